// Copyright (c) 2026 YaMDB. All rights reserved.

/*
Package review implements user reviews of catalog titles.

Each user may publish at most one review per title, scoring it from 1 to 10.
The average of these scores is the title's public rating.

# Architecture

Reviews are always addressed through their parent title
(/titles/{id}/reviews/...). Every storage query is scoped by both the
title ID and the review ID, so a review can never be reached through a
foreign title's URL.
*/
package review

import "time"

// Review is a single user's opinion of a title.
type Review struct {
	ID       int64     `json:"id"`
	TitleID  int64     `json:"-"`
	AuthorID int64     `json:"-"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	Score    int       `json:"score"`
	PubDate  time.Time `json:"pub_date"`
}

// Field identifiers used in validation messages.
const (
	FieldText  = "text"
	FieldScore = "score"
)

// Score bounds, inclusive.
const (
	ScoreMin = 1
	ScoreMax = 10
)
