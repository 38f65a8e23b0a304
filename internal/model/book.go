package model

// BookRecord is one synthetic catalog entry.
type BookRecord struct {
	ID            string   `json:"id"`
	Index         int      `json:"index"`
	ISBN          string   `json:"isbn"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Publisher     string   `json:"publisher"`
	Likes         int      `json:"likes"`
	Reviews       []Review `json:"reviews"`
	CoverImageURL string   `json:"coverImageUrl"`
}

// Review is a synthetic reader review attached to a book.
type Review struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Region is a selectable catalog locale.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
