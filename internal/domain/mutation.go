package domain

// MutationTag names an admin panel operation. The values are the ones the
// admin forms post in their "tipo" field.
type MutationTag string

const (
	MutationUpdateConfig MutationTag = "config_textos"
	MutationAddPromoter  MutationTag = "add_rrpp"
	MutationAddTransport MutationTag = "add_transporte"
	MutationToggle       MutationTag = "toggle"
	MutationDelete       MutationTag = "delete"
)

// Table names the record kind targeted by toggle and delete.
type Table string

const (
	TablePromoter  Table = "rrpp"
	TableTransport Table = "transporte"
)

func (t Table) Valid() bool {
	return t == TablePromoter || t == TableTransport
}

// Mutation is one admin panel submission. Only the payload matching Tag is read.
type Mutation struct {
	Tag MutationTag

	SiteConfig SiteConfig
	Promoter   PromoterInput
	Transport  TransportInput

	Table Table
	ID    uint
}
