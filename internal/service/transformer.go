package service

import (
	"encoding/json"
	"fmt"

	"github.com/hzaben/mufradat-api/internal/domain"
)

// TransformBasicCard maps a plain bilingual template card into a user card
// payload. The mapping is an identity copy of the display fields; the layout
// shows the English side as the question and the Arabic side with its
// bracketed transliteration as the answer.
//
// Pure function: no I/O, deterministic for the same input.
func TransformBasicCard(tc *domain.TemplateCard) (domain.CardContent, error) {
	fields, err := json.Marshal(domain.BasicFields{
		English:         tc.English,
		Arabic:          tc.Arabic,
		Transliteration: tc.Transliteration,
		Image:           tc.Image,
	})
	if err != nil {
		return domain.CardContent{}, fmt.Errorf("failed to encode basic fields: %w", err)
	}

	return domain.CardContent{
		Type:   domain.CardTypeBasic,
		Fields: fields,
		Layout: domain.Layout{
			Question: domain.BasicLayoutQuestion,
			Answer:   domain.BasicLayoutAnswer,
		},
	}, nil
}

// TransformVerbCard restructures a flat verb template row (one scalar column
// per tense/person/component) into the nested per-tense, per-person fields
// payload. Missing cells stay null; the transformer never synthesizes
// placeholder text for forms a verb does not have. The answer layout is a
// static conjugation-table template shared by every verb card.
//
// Pure function: no I/O, deterministic for the same input.
func TransformVerbCard(tv *domain.TemplateVerb) (domain.CardContent, error) {
	fields, err := json.Marshal(domain.VerbFields{
		Past: domain.VerbTense{
			I:     verbForm(tv.PastIEnglish, tv.PastIArabic, tv.PastITransliteration),
			YouM:  verbForm(tv.PastYouMEnglish, tv.PastYouMArabic, tv.PastYouMTransliteration),
			YouF:  verbForm(tv.PastYouFEnglish, tv.PastYouFArabic, tv.PastYouFTransliteration),
			YouPl: verbForm(tv.PastYouPlEnglish, tv.PastYouPlArabic, tv.PastYouPlTransliteration),
			He:    verbForm(tv.PastHeEnglish, tv.PastHeArabic, tv.PastHeTransliteration),
			She:   verbForm(tv.PastSheEnglish, tv.PastSheArabic, tv.PastSheTransliteration),
			We:    verbForm(tv.PastWeEnglish, tv.PastWeArabic, tv.PastWeTransliteration),
			They:  verbForm(tv.PastTheyEnglish, tv.PastTheyArabic, tv.PastTheyTransliteration),
		},
		Present: domain.VerbTense{
			I:     verbForm(tv.PresentIEnglish, tv.PresentIArabic, tv.PresentITransliteration),
			YouM:  verbForm(tv.PresentYouMEnglish, tv.PresentYouMArabic, tv.PresentYouMTransliteration),
			YouF:  verbForm(tv.PresentYouFEnglish, tv.PresentYouFArabic, tv.PresentYouFTransliteration),
			YouPl: verbForm(tv.PresentYouPlEnglish, tv.PresentYouPlArabic, tv.PresentYouPlTransliteration),
			He:    verbForm(tv.PresentHeEnglish, tv.PresentHeArabic, tv.PresentHeTransliteration),
			She:   verbForm(tv.PresentSheEnglish, tv.PresentSheArabic, tv.PresentSheTransliteration),
			We:    verbForm(tv.PresentWeEnglish, tv.PresentWeArabic, tv.PresentWeTransliteration),
			They:  verbForm(tv.PresentTheyEnglish, tv.PresentTheyArabic, tv.PresentTheyTransliteration),
		},
		Imperative: domain.ImperativeTense{
			YouM:  verbForm(tv.ImperativeYouMEnglish, tv.ImperativeYouMArabic, tv.ImperativeYouMTransliteration),
			YouF:  verbForm(tv.ImperativeYouFEnglish, tv.ImperativeYouFArabic, tv.ImperativeYouFTransliteration),
			YouPl: verbForm(tv.ImperativeYouPlEnglish, tv.ImperativeYouPlArabic, tv.ImperativeYouPlTransliteration),
		},
	})
	if err != nil {
		return domain.CardContent{}, fmt.Errorf("failed to encode verb fields: %w", err)
	}

	return domain.CardContent{
		Type:   domain.CardTypeVerb,
		Fields: fields,
		Layout: domain.Layout{
			Question: domain.VerbLayoutQuestion,
			Answer:   domain.VerbLayoutAnswer,
		},
	}, nil
}

// verbForm assembles one conjugation cell. A cell whose components are all
// absent collapses to null rather than an empty triple.
func verbForm(english, arabic, transliteration *string) *domain.VerbForm {
	if english == nil && arabic == nil && transliteration == nil {
		return nil
	}
	return &domain.VerbForm{
		English:         english,
		Arabic:          arabic,
		Transliteration: transliteration,
	}
}
