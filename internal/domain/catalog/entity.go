package catalog

import (
	"strings"
	"time"

	"rental-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 255
)

type Item struct {
	id                    uuid.UUID
	name                  string
	description           string
	defaultDailyRateCents int64
	createdAt             time.Time
	updatedAt             time.Time
}

func NewItem(id uuid.UUID, name, description string, defaultDailyRateCents int64, now time.Time) (*Item, error) {
	it := &Item{id: id, createdAt: now}
	if err := it.Update(name, description, defaultDailyRateCents, now); err != nil {
		return nil, err
	}
	return it, nil
}

func ReconstructItem(id uuid.UUID, name, description string, defaultDailyRateCents int64, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:                    id,
		name:                  name,
		description:           description,
		defaultDailyRateCents: defaultDailyRateCents,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (i *Item) Update(name, description string, defaultDailyRateCents int64, now time.Time) error {
	name, err := validateName("name", name)
	if err != nil {
		return err
	}
	if err := validateRate("default_daily_rate_cents", defaultDailyRateCents); err != nil {
		return err
	}
	i.name = name
	i.description = strings.TrimSpace(description)
	i.defaultDailyRateCents = defaultDailyRateCents
	i.updatedAt = now
	return nil
}

func (i *Item) ID() uuid.UUID                { return i.id }
func (i *Item) Name() string                 { return i.name }
func (i *Item) Description() string          { return i.description }
func (i *Item) DefaultDailyRateCents() int64 { return i.defaultDailyRateCents }
func (i *Item) CreatedAt() time.Time         { return i.createdAt }
func (i *Item) UpdatedAt() time.Time         { return i.updatedAt }

type Location struct {
	id           uuid.UUID
	name         string
	address      string
	contactInfo  string
	workingHours string
	createdAt    time.Time
	updatedAt    time.Time
}

type LocationDetails struct {
	Name         string
	Address      string
	ContactInfo  string
	WorkingHours string
}

func NewLocation(id uuid.UUID, d LocationDetails, now time.Time) (*Location, error) {
	l := &Location{id: id, createdAt: now}
	if err := l.Update(d, now); err != nil {
		return nil, err
	}
	return l, nil
}

func ReconstructLocation(id uuid.UUID, d LocationDetails, createdAt, updatedAt time.Time) *Location {
	return &Location{
		id:           id,
		name:         d.Name,
		address:      d.Address,
		contactInfo:  d.ContactInfo,
		workingHours: d.WorkingHours,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (l *Location) Update(d LocationDetails, now time.Time) error {
	name, err := validateName("name", d.Name)
	if err != nil {
		return err
	}
	address := strings.TrimSpace(d.Address)
	if address == "" {
		return errs.NewValidationError("address", "cannot be empty")
	}
	l.name = name
	l.address = address
	l.contactInfo = strings.TrimSpace(d.ContactInfo)
	l.workingHours = strings.TrimSpace(d.WorkingHours)
	l.updatedAt = now
	return nil
}

func (l *Location) ID() uuid.UUID        { return l.id }
func (l *Location) Name() string         { return l.name }
func (l *Location) Address() string      { return l.address }
func (l *Location) ContactInfo() string  { return l.contactInfo }
func (l *Location) WorkingHours() string { return l.workingHours }
func (l *Location) CreatedAt() time.Time { return l.createdAt }
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }

func (l *Location) Details() LocationDetails {
	return LocationDetails{
		Name:         l.name,
		Address:      l.address,
		ContactInfo:  l.contactInfo,
		WorkingHours: l.workingHours,
	}
}

// LocationStock is the unit count of one item held at one location. A row
// exists exactly for the locations that carry the item.
type LocationStock struct {
	itemID         uuid.UUID
	locationID     uuid.UUID
	quantity       int
	dailyRateCents int64
	updatedAt      time.Time
}

func NewLocationStock(itemID, locationID uuid.UUID, quantity int, dailyRateCents int64, now time.Time) (*LocationStock, error) {
	if quantity < 0 {
		return nil, errs.NewValidationError("quantity", "cannot be negative")
	}
	if err := validateRate("daily_rate_cents", dailyRateCents); err != nil {
		return nil, err
	}
	return &LocationStock{
		itemID:         itemID,
		locationID:     locationID,
		quantity:       quantity,
		dailyRateCents: dailyRateCents,
		updatedAt:      now,
	}, nil
}

func ReconstructLocationStock(itemID, locationID uuid.UUID, quantity int, dailyRateCents int64, updatedAt time.Time) *LocationStock {
	return &LocationStock{
		itemID:         itemID,
		locationID:     locationID,
		quantity:       quantity,
		dailyRateCents: dailyRateCents,
		updatedAt:      updatedAt,
	}
}

func (s *LocationStock) ItemID() uuid.UUID     { return s.itemID }
func (s *LocationStock) LocationID() uuid.UUID { return s.locationID }
func (s *LocationStock) Quantity() int         { return s.quantity }
func (s *LocationStock) DailyRateCents() int64 { return s.dailyRateCents }
func (s *LocationStock) UpdatedAt() time.Time  { return s.updatedAt }

func validateName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValidationError(field, "cannot be empty")
	}
	if len(name) > MaxNameLength {
		return "", errs.NewValidationError(field, "is too long (max 255 characters)")
	}
	return name, nil
}

func validateRate(field string, cents int64) error {
	if cents < 0 {
		return errs.NewValidationError(field, "cannot be negative")
	}
	return nil
}
