package webstorage

// nativeStorage adapts a NativeStorage handle to Storage. Cookie options
// are ignored.
type nativeStorage struct {
	native NativeStorage
	mech   Mechanism
}

func (n *nativeStorage) SetItem(key, value string, _ ...Option) error {
	return n.native.SetItem(key, value)
}

func (n *nativeStorage) GetItem(key string) (string, bool) {
	return n.native.GetItem(key)
}

func (n *nativeStorage) RemoveItem(key string, _ ...Option) error {
	return n.native.RemoveItem(key)
}

func (n *nativeStorage) Key(index int) (string, bool) {
	return n.native.Key(index)
}

func (n *nativeStorage) Length() int {
	return n.native.Length()
}

func (n *nativeStorage) HasOwnProperty(key string) bool {
	_, ok := n.native.GetItem(key)
	return ok
}

func (n *nativeStorage) Clear() error {
	return n.native.Clear()
}

var _ Storage = (*nativeStorage)(nil)
