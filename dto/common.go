package dto

// UserInfo is the compact user block embedded in reviews and ratings.
type UserInfo struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
}
