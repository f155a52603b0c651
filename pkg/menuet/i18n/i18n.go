// Package i18n wraps go-i18n for the small set of user-visible strings the
// toolkit emits itself. Loading a bundle is optional; without one every
// lookup falls back to the default message.
package i18n

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var current *localization

type localization struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

// Message is an alias for i18n.Message so callers do not have to import
// go-i18n directly.
type Message = i18n.Message

// MessageFile is a named message catalog held in memory.
type MessageFile struct {
	Name    string
	Content []byte
}

// Init loads message files (JSON or TOML, by extension) and selects English
// as the base language.
func Init(messageFilePaths []string) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, path := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return err
		}
	}

	current = &localization{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
		bundle:    bundle,
	}
	return nil
}

// InitFromBytes is Init for embedded catalogs.
func InitFromBytes(messageFiles []MessageFile) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(file.Content, file.Name); err != nil {
			return err
		}
	}

	current = &localization{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
		bundle:    bundle,
	}
	return nil
}

// SetLanguage switches the active locale. No-op before Init.
func SetLanguage(lang language.Tag) {
	if current == nil {
		return
	}
	current = &localization{
		localizer: i18n.NewLocalizer(current.bundle, lang.String()),
		bundle:    current.bundle,
	}
}

// SetWithCode switches the active locale from a BCP 47 code.
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Localize resolves message in the active locale, falling back to the
// message's Other text when no bundle is loaded or no translation exists.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}
	if current == nil {
		return message.Other
	}

	config := &i18n.LocalizeConfig{DefaultMessage: message}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := current.localizer.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}

// LocalizePlural is Localize with plural form selection by count.
func LocalizePlural(message *Message, count int, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}
	if current == nil {
		return message.Other
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
		PluralCount:    count,
	}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := current.localizer.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}
