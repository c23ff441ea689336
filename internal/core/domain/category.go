package domain

// CategoryTree holds the distinct category values currently present in the
// transaction log, one slice per tier. There is no category table: the tree
// is a live view, so a value disappears when the last transaction using it
// is deleted.
type CategoryTree struct {
	Category1 []string `json:"category1,omitempty"`
	Category2 []string `json:"category2"`
	Category3 []string `json:"category3"`
}
