package domain

import "time"

// Item is a vocabulary entry. Items are written by content ingestion only.
type Item struct {
	ID              int64     `db:"id" json:"id"`
	SourceText      string    `db:"source_text" json:"source_text"`
	TargetText      string    `db:"target_text" json:"target_text"`
	ExampleSentence string    `db:"example_sentence" json:"example_sentence,omitempty"`
	PartOfSpeech    string    `db:"part_of_speech" json:"part_of_speech"`
	Frequency       int       `db:"frequency" json:"frequency"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
}

// HasExample reports whether the item carries an example sentence
func (i Item) HasExample() bool {
	return i.ExampleSentence != ""
}
