package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	Name      string
	Phone     *string
	Email     *string
	CreatedAt time.Time
}
