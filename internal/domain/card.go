package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Card validation errors
var (
	ErrCardIDEmpty       = errors.New("card ID cannot be empty")
	ErrCardDeckIDEmpty   = errors.New("card deck ID cannot be empty")
	ErrCardUserIDEmpty   = errors.New("card user ID cannot be empty")
	ErrCardFieldsEmpty   = errors.New("card fields cannot be empty")
	ErrCardTypeInvalid   = errors.New("card type must be basic or verb")
	ErrCardFieldsInvalid = errors.New("card fields do not match card type")
	ErrCardLayoutInvalid = errors.New("card layout does not match card type")
)

// CardType discriminates between the two card payload shapes.
type CardType string

const (
	CardTypeBasic CardType = "basic"
	CardTypeVerb  CardType = "verb"
)

// Layout holds the question/answer template strings rendered by the
// presentation layer. Templates reference fields.* paths via {{...}} tokens.
type Layout struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Layout templates for basic cards.
const (
	BasicLayoutQuestion = "{{fields.english}}"
	BasicLayoutAnswer   = "{{fields.arabic}} ({{fields.transliteration}})"
)

// Layout templates for verb cards. The question shows the citation form
// (third person masculine past); the answer is a static conjugation table
// referencing every nested path. These are constants, never rebuilt per card.
const (
	VerbLayoutQuestion = "{{fields.past.he.english}}"
	VerbLayoutAnswer   = `<table class="conjugation">` +
		`<tr><th></th><th>Past</th><th>Present</th><th>Imperative</th></tr>` +
		`<tr><th>i</th>` +
		`<td>{{fields.past.i.arabic}}<br>{{fields.past.i.transliteration}}</td>` +
		`<td>{{fields.present.i.arabic}}<br>{{fields.present.i.transliteration}}</td>` +
		`<td></td></tr>` +
		`<tr><th>you (m)</th>` +
		`<td>{{fields.past.you_m.arabic}}<br>{{fields.past.you_m.transliteration}}</td>` +
		`<td>{{fields.present.you_m.arabic}}<br>{{fields.present.you_m.transliteration}}</td>` +
		`<td>{{fields.imperative.you_m.arabic}}<br>{{fields.imperative.you_m.transliteration}}</td></tr>` +
		`<tr><th>you (f)</th>` +
		`<td>{{fields.past.you_f.arabic}}<br>{{fields.past.you_f.transliteration}}</td>` +
		`<td>{{fields.present.you_f.arabic}}<br>{{fields.present.you_f.transliteration}}</td>` +
		`<td>{{fields.imperative.you_f.arabic}}<br>{{fields.imperative.you_f.transliteration}}</td></tr>` +
		`<tr><th>you (pl)</th>` +
		`<td>{{fields.past.you_pl.arabic}}<br>{{fields.past.you_pl.transliteration}}</td>` +
		`<td>{{fields.present.you_pl.arabic}}<br>{{fields.present.you_pl.transliteration}}</td>` +
		`<td>{{fields.imperative.you_pl.arabic}}<br>{{fields.imperative.you_pl.transliteration}}</td></tr>` +
		`<tr><th>he</th>` +
		`<td>{{fields.past.he.arabic}}<br>{{fields.past.he.transliteration}}</td>` +
		`<td>{{fields.present.he.arabic}}<br>{{fields.present.he.transliteration}}</td>` +
		`<td></td></tr>` +
		`<tr><th>she</th>` +
		`<td>{{fields.past.she.arabic}}<br>{{fields.past.she.transliteration}}</td>` +
		`<td>{{fields.present.she.arabic}}<br>{{fields.present.she.transliteration}}</td>` +
		`<td></td></tr>` +
		`<tr><th>we</th>` +
		`<td>{{fields.past.we.arabic}}<br>{{fields.past.we.transliteration}}</td>` +
		`<td>{{fields.present.we.arabic}}<br>{{fields.present.we.transliteration}}</td>` +
		`<td></td></tr>` +
		`<tr><th>they</th>` +
		`<td>{{fields.past.they.arabic}}<br>{{fields.past.they.transliteration}}</td>` +
		`<td>{{fields.present.they.arabic}}<br>{{fields.present.they.transliteration}}</td>` +
		`<td></td></tr>` +
		`</table>`
)

// BasicFields is the fields payload of a basic card.
type BasicFields struct {
	English         string  `json:"english"`
	Arabic          string  `json:"arabic"`
	Transliteration string  `json:"transliteration"`
	Image           *string `json:"image"`
}

// VerbForm is a single conjugation cell. Components stay nil when the
// template has no value for them.
type VerbForm struct {
	English         *string `json:"english"`
	Arabic          *string `json:"arabic"`
	Transliteration *string `json:"transliteration"`
}

// VerbTense maps grammatical persons to conjugation cells for one tense.
// A nil cell means the verb has no form for that person.
type VerbTense struct {
	I     *VerbForm `json:"i"`
	YouM  *VerbForm `json:"you_m"`
	YouF  *VerbForm `json:"you_f"`
	YouPl *VerbForm `json:"you_pl"`
	He    *VerbForm `json:"he"`
	She   *VerbForm `json:"she"`
	We    *VerbForm `json:"we"`
	They  *VerbForm `json:"they"`
}

// ImperativeTense carries only the second-person forms; Arabic has no
// imperative for the remaining persons.
type ImperativeTense struct {
	YouM  *VerbForm `json:"you_m"`
	YouF  *VerbForm `json:"you_f"`
	YouPl *VerbForm `json:"you_pl"`
}

// VerbFields is the fields payload of a verb card.
type VerbFields struct {
	Past       VerbTense       `json:"past"`
	Present    VerbTense       `json:"present"`
	Imperative ImperativeTense `json:"imperative"`
}

// CardContent is a card payload produced by the transformer before it is
// bound to a deck and given an identity.
type CardContent struct {
	Type   CardType        `json:"type"`
	Fields json.RawMessage `json:"fields"`
	Layout Layout          `json:"layout"`
}

// Card is a user-owned flashcard. The fields payload is a tagged variant
// selected by Type and stored as JSONB.
type Card struct {
	ID        uuid.UUID       `json:"id"`
	DeckID    uuid.UUID       `json:"deck_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Type      CardType        `json:"type"`
	Fields    json.RawMessage `json:"fields"`
	Layout    Layout          `json:"layout"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewCard creates a new Card owned by the given user in the given deck,
// carrying the transformed content payload. Returns an error if the
// discriminant and payload shape disagree.
func NewCard(userID, deckID uuid.UUID, content CardContent) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:        uuid.New(),
		DeckID:    deckID,
		UserID:    userID,
		Type:      content.Type,
		Fields:    content.Fields,
		Layout:    content.Layout,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks identity fields and enforces the discriminant/payload
// pairing: the fields JSON must decode into the shape selected by Type, and
// the layout must belong to the same variant.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.DeckID == uuid.Nil {
		return ErrCardDeckIDEmpty
	}

	if c.UserID == uuid.Nil {
		return ErrCardUserIDEmpty
	}

	if len(c.Fields) == 0 {
		return ErrCardFieldsEmpty
	}

	switch c.Type {
	case CardTypeBasic:
		var fields BasicFields
		if err := decodeStrict(c.Fields, &fields); err != nil {
			return fmt.Errorf("%w: %v", ErrCardFieldsInvalid, err)
		}
		if c.Layout.Question != BasicLayoutQuestion {
			return ErrCardLayoutInvalid
		}
	case CardTypeVerb:
		var fields VerbFields
		if err := decodeStrict(c.Fields, &fields); err != nil {
			return fmt.Errorf("%w: %v", ErrCardFieldsInvalid, err)
		}
		// A verb card must never carry the flat basic layout.
		if c.Layout.Question == BasicLayoutQuestion {
			return ErrCardLayoutInvalid
		}
	default:
		return ErrCardTypeInvalid
	}

	return nil
}

// decodeStrict unmarshals JSON rejecting fields outside the target shape.
func decodeStrict(data json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
