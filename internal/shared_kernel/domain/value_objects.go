package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

// OwnerID scopes every catalog, record and period read or write.
type OwnerID string

func (vo OwnerID) String() string {
	return string(vo)
}

type Name string
type DisplayName string
