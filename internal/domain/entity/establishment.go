// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Belarus bounding box used for coordinate validation at write time.
const (
	MinLatitude  = 51.0
	MaxLatitude  = 56.0
	MinLongitude = 23.0
	MaxLongitude = 33.0
)

// City is the closed set of cities the directory covers.
type City string

const (
	CityMinsk    City = "minsk"
	CityGomel    City = "gomel"
	CityMogilev  City = "mogilev"
	CityVitebsk  City = "vitebsk"
	CityGrodno   City = "grodno"
	CityBrest    City = "brest"
	CityBobruisk City = "bobruisk"
)

// AllCities lists every supported city.
var AllCities = []City{CityMinsk, CityGomel, CityMogilev, CityVitebsk, CityGrodno, CityBrest, CityBobruisk}

// IsValid checks if the City is a valid value.
func (c City) IsValid() bool {
	for _, known := range AllCities {
		if c == known {
			return true
		}
	}

	return false
}

// Category classifies an establishment. One or two per establishment.
type Category string

const (
	CategoryRestaurant   Category = "restaurant"
	CategoryCafe         Category = "cafe"
	CategoryBar          Category = "bar"
	CategoryPizzeria     Category = "pizzeria"
	CategorySushi        Category = "sushi"
	CategoryFastFood     Category = "fast_food"
	CategoryBakery       Category = "bakery"
	CategoryCoffeeShop   Category = "coffee_shop"
	CategoryPub          Category = "pub"
	CategoryCanteen      Category = "canteen"
	CategorySteakhouse   Category = "steakhouse"
	CategoryConfectioner Category = "confectionery"
	CategoryHookahLounge Category = "hookah_lounge"
)

// AllCategories lists every supported category.
var AllCategories = []Category{
	CategoryRestaurant, CategoryCafe, CategoryBar, CategoryPizzeria, CategorySushi,
	CategoryFastFood, CategoryBakery, CategoryCoffeeShop, CategoryPub, CategoryCanteen,
	CategorySteakhouse, CategoryConfectioner, CategoryHookahLounge,
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}

	return false
}

// Cuisine describes the kitchen of an establishment. One to three per establishment.
type Cuisine string

const (
	CuisineBelarusian Cuisine = "belarusian"
	CuisineEuropean   Cuisine = "european"
	CuisineItalian    Cuisine = "italian"
	CuisineJapanese   Cuisine = "japanese"
	CuisineGeorgian   Cuisine = "georgian"
	CuisineAmerican   Cuisine = "american"
	CuisineAsian      Cuisine = "asian"
	CuisineRussian    Cuisine = "russian"
	CuisineUkrainian  Cuisine = "ukrainian"
	CuisineFrench     Cuisine = "french"
)

// AllCuisines lists every supported cuisine.
var AllCuisines = []Cuisine{
	CuisineBelarusian, CuisineEuropean, CuisineItalian, CuisineJapanese, CuisineGeorgian,
	CuisineAmerican, CuisineAsian, CuisineRussian, CuisineUkrainian, CuisineFrench,
}

// IsValid checks if the Cuisine is a valid value.
func (c Cuisine) IsValid() bool {
	for _, known := range AllCuisines {
		if c == known {
			return true
		}
	}

	return false
}

// PriceRange is the coarse price indicator shown in listings.
type PriceRange string

const (
	PriceCheap    PriceRange = "$"
	PriceModerate PriceRange = "$$"
	PriceUpscale  PriceRange = "$$$"
)

// IsValid checks if the PriceRange is a valid value.
func (p PriceRange) IsValid() bool {
	switch p {
	case PriceCheap, PriceModerate, PriceUpscale:
		return true
	default:
		return false
	}
}

// DaySchedule describes opening hours for a single weekday.
type DaySchedule struct {
	Open   string `json:"open,omitempty"`  // "HH:MM", empty when closed
	Close  string `json:"close,omitempty"` // "HH:MM", empty when closed
	Closed bool   `json:"closed"`
}

// WorkingHours is the structured weekly schedule keyed by lowercase weekday
// ("monday" .. "sunday").
type WorkingHours map[string]DaySchedule

// Attributes holds boolean feature flags such as wifi, parking, or terrace.
type Attributes map[string]bool

// Establishment is the central entity of the directory: a single venue owned by
// exactly one partner, moving through the moderation status machine.
type Establishment struct {
	ID           uuid.UUID    `json:"id"`          // The Global Unique Identifier (GUID) for the establishment.
	PartnerID    uuid.UUID    `json:"partner_id"`  // Owning partner; only the owner or an admin may mutate.
	Name         string       `json:"name"`        // Display name, 1-255 characters.
	Description  string       `json:"description"` // Free-text description; a minor field for moderation purposes.
	City         City         `json:"city"`        // One of the seven supported Belarus cities.
	Address      string       `json:"address"`     // Street address, 1-500 characters.
	Latitude     float64      `json:"latitude"`    // Must be inside the Belarus bounding box.
	Longitude    float64      `json:"longitude"`   // Must be inside the Belarus bounding box.
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	Website      string       `json:"website,omitempty"`
	Categories   []Category   `json:"categories"` // 1-2 categories.
	Cuisines     []Cuisine    `json:"cuisines"`   // 1-3 cuisines.
	PriceRange   PriceRange   `json:"price_range,omitempty"`
	WorkingHours WorkingHours `json:"working_hours,omitempty"`
	Attributes   Attributes   `json:"attributes,omitempty"`
	Status       EstablishmentStatus `json:"status"`

	// AverageRating and ReviewCount are caches derived from the review store.
	// They are recomputed by the aggregate recalculator and never accepted
	// from client input.
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`

	Media     []*EstablishmentMedia `json:"media,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// EstablishmentMedia is a photo or other media asset attached to an establishment.
type EstablishmentMedia struct {
	ID              uuid.UUID `json:"id"`
	EstablishmentID uuid.UUID `json:"establishment_id"`
	URL             string    `json:"url"`
	Kind            string    `json:"kind"` // "photo", "logo", "menu"
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsOwnedBy reports whether the given partner owns this establishment.
func (e *Establishment) IsOwnedBy(partnerID uuid.UUID) bool {
	return e.PartnerID == partnerID
}

// majorFields drive the re-moderation rule: editing any of these on an active
// establishment resets it to pending.
const (
	FieldName       = "name"
	FieldCity       = "city"
	FieldAddress    = "address"
	FieldCategories = "categories"
	FieldCuisines   = "cuisines"
)

// IsMajorField reports whether a change to the named field requires re-moderation.
func IsMajorField(field string) bool {
	switch field {
	case FieldName, FieldCity, FieldAddress, FieldCategories, FieldCuisines:
		return true
	default:
		return false
	}
}
