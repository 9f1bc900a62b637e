package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerbDeckName is the name of the curated template deck whose cards are
// verb-conjugation tables rather than plain bilingual cards. Template decks
// with any other name hold basic cards.
const VerbDeckName = "Verbs"

// TemplateDeck is an admin-curated source deck. Template content is
// maintained out of band (seed migrations) and is read-only to the API.
type TemplateDeck struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsVerbDeck reports whether this template deck holds verb-conjugation cards.
func (d *TemplateDeck) IsVerbDeck() bool {
	return d.Name == VerbDeckName
}

// TemplateCard is a plain bilingual template card.
type TemplateCard struct {
	ID              uuid.UUID `json:"id"`
	DeckID          uuid.UUID `json:"deck_id"`
	English         string    `json:"english"`
	Arabic          string    `json:"arabic"`
	Transliteration string    `json:"transliteration"`
	Image           *string   `json:"image"`
	Audio           *string   `json:"audio"`
	Tags            []string  `json:"tags"`
	CreatedAt       time.Time `json:"created_at"`
}

// TemplateVerb is a verb-conjugation template card. Every tense/person
// combination is stored as a separate nullable scalar column; a verb may
// legitimately lack a form for a given person (imperative in particular only
// exists for the second person).
type TemplateVerb struct {
	ID        uuid.UUID `json:"id"`
	DeckID    uuid.UUID `json:"deck_id"`
	CreatedAt time.Time `json:"created_at"`

	PastIEnglish             *string `json:"past_i_english"`
	PastIArabic              *string `json:"past_i_arabic"`
	PastITransliteration     *string `json:"past_i_transliteration"`
	PastYouMEnglish          *string `json:"past_you_m_english"`
	PastYouMArabic           *string `json:"past_you_m_arabic"`
	PastYouMTransliteration  *string `json:"past_you_m_transliteration"`
	PastYouFEnglish          *string `json:"past_you_f_english"`
	PastYouFArabic           *string `json:"past_you_f_arabic"`
	PastYouFTransliteration  *string `json:"past_you_f_transliteration"`
	PastYouPlEnglish         *string `json:"past_you_pl_english"`
	PastYouPlArabic          *string `json:"past_you_pl_arabic"`
	PastYouPlTransliteration *string `json:"past_you_pl_transliteration"`
	PastHeEnglish            *string `json:"past_he_english"`
	PastHeArabic             *string `json:"past_he_arabic"`
	PastHeTransliteration    *string `json:"past_he_transliteration"`
	PastSheEnglish           *string `json:"past_she_english"`
	PastSheArabic            *string `json:"past_she_arabic"`
	PastSheTransliteration   *string `json:"past_she_transliteration"`
	PastWeEnglish            *string `json:"past_we_english"`
	PastWeArabic             *string `json:"past_we_arabic"`
	PastWeTransliteration    *string `json:"past_we_transliteration"`
	PastTheyEnglish          *string `json:"past_they_english"`
	PastTheyArabic           *string `json:"past_they_arabic"`
	PastTheyTransliteration  *string `json:"past_they_transliteration"`

	PresentIEnglish             *string `json:"present_i_english"`
	PresentIArabic              *string `json:"present_i_arabic"`
	PresentITransliteration     *string `json:"present_i_transliteration"`
	PresentYouMEnglish          *string `json:"present_you_m_english"`
	PresentYouMArabic           *string `json:"present_you_m_arabic"`
	PresentYouMTransliteration  *string `json:"present_you_m_transliteration"`
	PresentYouFEnglish          *string `json:"present_you_f_english"`
	PresentYouFArabic           *string `json:"present_you_f_arabic"`
	PresentYouFTransliteration  *string `json:"present_you_f_transliteration"`
	PresentYouPlEnglish         *string `json:"present_you_pl_english"`
	PresentYouPlArabic          *string `json:"present_you_pl_arabic"`
	PresentYouPlTransliteration *string `json:"present_you_pl_transliteration"`
	PresentHeEnglish            *string `json:"present_he_english"`
	PresentHeArabic             *string `json:"present_he_arabic"`
	PresentHeTransliteration    *string `json:"present_he_transliteration"`
	PresentSheEnglish           *string `json:"present_she_english"`
	PresentSheArabic            *string `json:"present_she_arabic"`
	PresentSheTransliteration   *string `json:"present_she_transliteration"`
	PresentWeEnglish            *string `json:"present_we_english"`
	PresentWeArabic             *string `json:"present_we_arabic"`
	PresentWeTransliteration    *string `json:"present_we_transliteration"`
	PresentTheyEnglish          *string `json:"present_they_english"`
	PresentTheyArabic           *string `json:"present_they_arabic"`
	PresentTheyTransliteration  *string `json:"present_they_transliteration"`

	ImperativeYouMEnglish          *string `json:"imperative_you_m_english"`
	ImperativeYouMArabic           *string `json:"imperative_you_m_arabic"`
	ImperativeYouMTransliteration  *string `json:"imperative_you_m_transliteration"`
	ImperativeYouFEnglish          *string `json:"imperative_you_f_english"`
	ImperativeYouFArabic           *string `json:"imperative_you_f_arabic"`
	ImperativeYouFTransliteration  *string `json:"imperative_you_f_transliteration"`
	ImperativeYouPlEnglish         *string `json:"imperative_you_pl_english"`
	ImperativeYouPlArabic          *string `json:"imperative_you_pl_arabic"`
	ImperativeYouPlTransliteration *string `json:"imperative_you_pl_transliteration"`
}
