package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/pcdata/core"
	"github.com/npillmayer/pcdata/engine/text/hyphenate"
	"golang.org/x/text/language"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	dictionaryResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case dictionaryResourceType:
		s = fmt.Sprintf("no hyphenation patterns found for language %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

// --- Hyphenation dictionaries ----------------------------------------------

type dictPlusErr struct {
	dict *hyphenate.Dictionary
	err  error
}

// DictionaryPromise delivers a hyphenation dictionary once it has been loaded.
type DictionaryPromise interface {
	Dictionary() (*hyphenate.Dictionary, error)
	Await(ctx context.Context) (*hyphenate.Dictionary, error)
}

type dictionaryLoader struct {
	done   <-chan struct{}
	result *dictPlusErr
}

// Dictionary blocks until loading has completed.
func (loader dictionaryLoader) Dictionary() (*hyphenate.Dictionary, error) {
	return loader.Await(context.Background())
}

// Await blocks until loading has completed or ctx is done. It may be called
// more than once and will always report the same result.
func (loader dictionaryLoader) Await(ctx context.Context) (*hyphenate.Dictionary, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-loader.done:
		return loader.result.dict, loader.result.err
	}
}

// ResolveDictionary locates and loads the hyphenation patterns for lang.
// A dictionary already registered for lang is delivered without touching the
// file system. Otherwise every folder in dirs is searched for the file names
// PatternFileNames(lang) returns, in that order. If dirs is empty, the
// user's cache folder for pcdata (see CacheDirPath) is searched.
//
// A successfully loaded dictionary is registered for lang. If no pattern
// file is found, the promise reports an error with code core.EMISSING.
func ResolveDictionary(lang language.Tag, dirs []string) DictionaryPromise {
	done := make(chan struct{})
	result := &dictPlusErr{}
	go func(done chan<- struct{}) {
		result.dict, result.err = loadDictionary(lang, dirs)
		close(done)
	}(done)
	return dictionaryLoader{
		done:   done,
		result: result,
	}
}

func loadDictionary(lang language.Tag, dirs []string) (*hyphenate.Dictionary, error) {
	if d, ok := Dictionary(lang); ok {
		tracer().Debugf("hyphenation dictionary for %s found in cache", lang)
		return d, nil
	}
	if len(dirs) == 0 {
		dir, err := CacheDirPath("hyphenation")
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "no search path for hyphenation patterns")
		}
		dirs = []string{dir}
	}
	names := PatternFileNames(lang)
	for _, dir := range dirs {
		for _, name := range names {
			fpath := filepath.Join(dir, name)
			f, err := os.Open(fpath)
			if os.IsNotExist(err) {
				continue
			} else if err != nil {
				return nil, core.WrapError(err, core.EIO, "cannot open pattern file %s", fpath)
			}
			tracer().Infof("loading hyphenation patterns from %s", fpath)
			d, err := hyphenate.LoadPatterns(lang.String(), f)
			f.Close()
			if err != nil {
				return nil, err
			}
			RegisterDictionary(lang, d)
			return d, nil
		}
	}
	tracer().Infof("no pattern file %v in %v", names, dirs)
	return nil, NotFound(lang.String(), dictionaryResourceType)
}

// PatternFileNames returns the names of pattern files for lang, most
// specific first, following the naming of the TeX hyph-utf8 package:
//
//     hyph-en-us.tex  hyph-en-us.pat  hyph-en.tex  hyph-en.pat
//
// A region is included if it is given or can be inferred from lang.
// For an undetermined language the result is empty.
func PatternFileNames(lang language.Tag) []string {
	if lang == language.Und {
		return nil
	}
	base, conf := lang.Base()
	if conf == language.No {
		return nil
	}
	stems := make([]string, 0, 2)
	if region, conf := lang.Region(); conf != language.No {
		stems = append(stems, strings.ToLower("hyph-"+base.String()+"-"+region.String()))
	}
	stems = append(stems, "hyph-"+base.String())
	names := make([]string, 0, 2*len(stems))
	for _, stem := range stems {
		names = append(names, stem+".tex", stem+".pat")
	}
	return names
}
