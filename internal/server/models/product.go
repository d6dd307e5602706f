package models

// Product is a record owned by exactly one user. Description is nil when
// the client never supplied one.
type Product struct {
	ID          int64
	UserID      int64
	Name        string
	Description *string
}

// ProductUpdate is a partial update. Name is applied when non-nil.
// Description is applied when DescriptionSet is true, and a nil
// Description then clears the stored value.
type ProductUpdate struct {
	Name           *string
	Description    *string
	DescriptionSet bool
}
