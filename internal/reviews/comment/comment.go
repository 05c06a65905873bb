// Copyright (c) 2026 YaMDB. All rights reserved.

// Package comment implements threaded discussion under reviews.
//
// Comments are addressed through their full parent chain
// (/titles/{id}/reviews/{id}/comments/...), and every storage query is
// scoped by that chain.
package comment

import "time"

// Comment is a user's reply to a review.
type Comment struct {
	ID       int64     `json:"id"`
	ReviewID int64     `json:"-"`
	AuthorID int64     `json:"-"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
}

// FieldText is the validation identifier for the comment body.
const FieldText = "text"
