package domain

import (
	interfaces "mwtrack/internal/domain/interfaces"
	types "mwtrack/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyUser        = types.KeyUser
	OrderNumber    = types.OrderNumber
	Text           = types.Text
	User           = types.User
	ProductFile    = types.ProductFile
	Attributes     = types.Attributes
	Product        = types.Product
	Characteristic = types.Characteristic
	Variant        = types.Variant
	ProductDetail  = types.ProductDetail
	CartItem       = types.CartItem
	Cart           = types.Cart
	CartGroup      = types.CartGroup
	Order          = types.Order
	OrderSection   = types.OrderSection
	TrackingLog    = types.TrackingLog
	Notification   = types.Notification
	Envelope       = types.Envelope
	Call           = types.Call
	OfflineAction  = types.OfflineAction
	Submission     = types.Submission
	Language       = types.Language
	Theme          = types.Theme
	Palette        = types.Palette
)

// Language and theme constants re-exported from the types subpackage.
const (
	Spanish    = types.Spanish
	English    = types.English
	French     = types.French
	Portuguese = types.Portuguese

	Light = types.Light
	Dark  = types.Dark
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyValueStore  = interfaces.KeyValueStore
	SessionStore   = interfaces.SessionStore
	Backend        = interfaces.Backend
	Submitter      = interfaces.Submitter
	Notifier       = interfaces.Notifier
	SessionService = interfaces.SessionService
)
