package models

// Subject is an entry of the subject catalog. Lessons reference subjects by name.
type Subject struct {
	ID   int    `db:"subjects_id" json:"subjects_id"`
	Name string `db:"name" json:"name"`
}

// Room is an entry of the room catalog.
type Room struct {
	ID   int    `db:"room_id" json:"room_id"`
	Name string `db:"name" json:"name"`
}
