package menu

import (
	"errors"
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("menu item name cannot be empty")
	ErrNameTooLong      = errors.New("menu item name is too long (max 100 characters)")
	ErrInvalidCategory  = errors.New("invalid menu category")
	ErrNonPositivePrice = errors.New("menu item price must be greater than zero")
)

const MaxNameLength = 100

type Category string

const (
	CategoryFood     Category = "food"
	CategoryBeverage Category = "beverage"
	CategoryOther    Category = "other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryBeverage, CategoryOther:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Item is a restaurant menu entry.
type Item struct {
	id          uuid.UUID
	name        string
	category    Category
	price       money.Money
	available   bool
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(name string, category Category, price money.Money, available bool, description string) (*Item, error) {
	it := &Item{id: uuid.New()}
	if err := it.Update(name, category, price, available, description); err != nil {
		return nil, err
	}
	return it, nil
}

func ReconstructItem(
	id uuid.UUID,
	name string,
	category Category,
	price money.Money,
	available bool,
	description string,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		name:        name,
		category:    category,
		price:       price,
		available:   available,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (it *Item) Update(name string, category Category, price money.Money, available bool, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	if !price.IsPositive() {
		return ErrNonPositivePrice
	}

	it.name = name
	it.category = category
	it.price = price
	it.available = available
	it.description = strings.TrimSpace(description)
	return nil
}

func (it *Item) ID() uuid.UUID        { return it.id }
func (it *Item) Name() string         { return it.name }
func (it *Item) Category() Category   { return it.category }
func (it *Item) Price() money.Money   { return it.price }
func (it *Item) Available() bool      { return it.available }
func (it *Item) Description() string  { return it.description }
func (it *Item) CreatedAt() time.Time { return it.createdAt }
func (it *Item) UpdatedAt() time.Time { return it.updatedAt }
