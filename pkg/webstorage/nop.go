package webstorage

// NopStorage is the inert backend returned when no mechanism is usable.
// Every operation does nothing; Length is always 0.
type NopStorage struct{}

func (NopStorage) SetItem(string, string, ...Option) error { return nil }
func (NopStorage) GetItem(string) (string, bool)            { return "", false }
func (NopStorage) RemoveItem(string, ...Option) error       { return nil }
func (NopStorage) Key(int) (string, bool)                   { return "", false }
func (NopStorage) Length() int                              { return 0 }
func (NopStorage) HasOwnProperty(string) bool               { return false }
func (NopStorage) Clear() error                             { return nil }

var _ Storage = NopStorage{}
