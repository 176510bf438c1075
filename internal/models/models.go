package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// CartSlots is how many item slots a fresh cart is pre-populated with.
const CartSlots = 300

type Product struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Image     string    `gorm:"not null"                 json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `gorm:"not null"                 json:"new_price"`
	OldPrice  float64   `gorm:"not null"                 json:"old_price"`
	Date      time.Time `gorm:"autoCreateTime"           json:"date"`
	Available bool      `gorm:"default:true"             json:"available"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CartData     CartData  `gorm:"type:text"                json:"cartData"`
	Date         time.Time `gorm:"autoCreateTime"           json:"date"`
}

// CartData maps an item key to the held quantity. It is stored as a single
// JSON text column so the whole cart can be swapped atomically.
type CartData map[string]int

func NewCartData() CartData {
	cart := make(CartData, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}

// Value serializes the cart to canonical JSON. json.Marshal sorts map keys,
// so equal carts always serialize to the same string, which the cart
// compare-and-swap update relies on.
func (c CartData) Value() (driver.Value, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (c *CartData) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into CartData", value)
	}
}
