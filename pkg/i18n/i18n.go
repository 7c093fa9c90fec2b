package i18n

import (
	"embed"
	"encoding/json"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle *goi18n.Bundle
	mu     sync.RWMutex
)

// Init creates the message bundle with the embedded locale files.
// Vietnamese is the bundle default, matching the upstream catalog language.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	bundle = goi18n.NewBundle(language.Vietnamese)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name()); err != nil {
			return err
		}
	}
	return nil
}

// Load adds an external locale file on top of the embedded ones.
func Load(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if bundle == nil {
		return nil
	}
	_, err := bundle.LoadMessageFile(path)
	return err
}

// T localizes a message for the given language, falling back to the
// message ID itself when no translation exists anywhere.
func T(lang, messageID string, data map[string]interface{}) string {
	mu.RLock()
	defer mu.RUnlock()
	if bundle == nil {
		return messageID
	}

	loc := goi18n.NewLocalizer(bundle, lang)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
