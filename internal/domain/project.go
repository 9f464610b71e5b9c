package domain

import "time"

type Project struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ProjectListItem is the admin overview row, with the client name
// joined in.
type ProjectListItem struct {
	ID         int       `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	ClientName string    `db:"client_name" json:"client_name"`
}

type ProjectComment struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"-"`
	Message    string    `db:"message" json:"message"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	AuthorName string    `db:"author_name" json:"author_name"`
	AuthorRole string    `db:"author_role" json:"author_role"`
	IsMe       bool      `json:"is_me"`
}

type ProjectDetail struct {
	Project  Project          `json:"project"`
	Comments []ProjectComment `json:"comments"`
}

type CreateCommentRequest struct {
	Message string `json:"message" validate:"required"`
}
