package domain

import "time"

// Server is the community a promotion advertises.
type Server struct {
	ID      int64
	Name    string
	OwnerID int64
	Active  bool
}

// User is a registered account as seen by reward conditions.
type User struct {
	ID        int64
	Level     int
	Active    bool
	CreatedAt time.Time
}
