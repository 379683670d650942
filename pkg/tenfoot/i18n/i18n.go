package i18n

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

func InitI18N(messageFilePaths []string) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, messageFile := range messageFilePaths {
		_, err := bundle.LoadMessageFile(messageFile)
		if err != nil {
			return err
		}
	}

	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}

	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, messageFile := range messageFiles {
		_, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name)
		if err != nil {
			return err
		}
	}

	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}

	return nil
}

func SetLanguage(lang language.Tag) {
	if i == nil {
		return
	}
	i = &I18N{localizer: i18n.NewLocalizer(i.bundle, lang.String()), bundle: i.bundle}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Message is an alias for i18n.Message so callers don't import go-i18n.
type Message = i18n.Message

// Localize retrieves a localized string using the struct pattern. The
// DefaultMessage provides the message ID and fallback text, so an
// uninitialized bundle degrades to the built-in English strings.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}

	if i == nil {
		return message.Other
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := i.localizer.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}
