package resources

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/npillmayer/pcdata/engine/text/hyphenate"
	"golang.org/x/text/language"
)

// AppKey names the application specific sub-folder of the user's cache
// directory.
const AppKey = "pcdata"

var dictionaries = struct {
	sync.RWMutex
	byLang map[string]*hyphenate.Dictionary
}{
	byLang: make(map[string]*hyphenate.Dictionary),
}

// RegisterDictionary stores d as the hyphenation dictionary for lang,
// replacing any dictionary registered before. d must not be modified after
// registration.
func RegisterDictionary(lang language.Tag, d *hyphenate.Dictionary) {
	if d == nil {
		return
	}
	dictionaries.Lock()
	defer dictionaries.Unlock()
	dictionaries.byLang[lang.String()] = d
	tracer().Debugf("registered hyphenation dictionary %q for %s", d.Identifier(), lang)
}

// Dictionary returns the dictionary registered for lang. If there is none,
// the dictionary registered for the base language of lang is returned, if
// any. E.g., a dictionary registered for "de" is found for "de-CH".
func Dictionary(lang language.Tag) (*hyphenate.Dictionary, bool) {
	dictionaries.RLock()
	defer dictionaries.RUnlock()
	if d, ok := dictionaries.byLang[lang.String()]; ok {
		return d, true
	}
	base, _ := lang.Base()
	d, ok := dictionaries.byLang[base.String()]
	return d, ok
}

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// AppKey. Clients may specify a sequence of folder names, which will be
// appended to the base cache path. Non-existing sub-folders will be created
// as necessary (with permissions 755).
func CacheDirPath(subfolders ...string) (string, error) {
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	subs := filepath.Join(subfolders...)
	cachedir = filepath.Join(cachedir, AppKey, subs)
	tracer().Debugf("caching in %s", cachedir)
	_, err = os.Stat(cachedir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(cachedir, 0755)
		if err != nil {
			return "", err
		}
	}
	return cachedir, nil
}
