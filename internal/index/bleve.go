package index

import (
	"os"

	"github.com/blevesearch/bleve/v2"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"
)

// BleveStore keeps the index in a bleve document index. Beyond the shared
// SMJ7 syntax it accepts bleve query strings (fuzzy matches, field scoping).
type BleveStore struct {
	path  string
	index bleve.Index
}

func (b *BleveStore) Initialize(path string) error {
	b.path = path
	if _, err := os.Stat(path); os.IsNotExist(err) {
		index, err := bleve.New(path, bleve.NewIndexMapping())
		if err != nil {
			return err
		}
		b.index = index
		return nil
	}
	index, err := bleve.Open(path)
	if err != nil {
		return err
	}
	b.index = index
	return nil
}

func (b *BleveStore) Close() error {
	if b.index != nil {
		return b.index.Close()
	}
	return nil
}

// Clear drops and recreates the index directory.
func (b *BleveStore) Clear() error {
	if b.index != nil {
		if err := b.index.Close(); err != nil {
			return err
		}
		b.index = nil
	}
	if err := os.RemoveAll(b.path); err != nil {
		return err
	}
	return b.Initialize(b.path)
}

func (b *BleveStore) IndexBatch(batch []*Track) error {
	batchIndex := b.index.NewBatch()
	for _, t := range batch {
		// Filename as doc ID: uploads of the same name update in place.
		if err := batchIndex.Index(t.Filename, t); err != nil {
			return err
		}
	}
	return b.index.Batch(batchIndex)
}

func (b *BleveStore) Remove(filename string) error {
	return b.index.Delete(filename)
}

func (b *BleveStore) Count() (int, error) {
	c, err := b.index.DocCount()
	return int(c), err
}

func (b *BleveStore) Search(input string) ([]Track, error) {
	if input == "" {
		return b.runQuery(bleve.NewMatchAllQuery())
	}
	if looksLikeSMJ7(input) {
		return b.searchSMJ7(ParseQuery(input))
	}
	// Bleve's own query string syntax, for fuzzy search and field scoping.
	return b.runQuery(bleve.NewQueryStringQuery(input))
}

func (b *BleveStore) searchSMJ7(q Query) ([]Track, error) {
	mainBoolQuery := bleve.NewBooleanQuery()

	orGroup := func(terms []string, field string) {
		if len(terms) == 0 {
			return
		}
		subQuery := bleve.NewBooleanQuery()
		for _, t := range terms {
			mq := bleve.NewMatchQuery(t)
			mq.SetField(field)
			subQuery.AddShould(mq)
		}
		mainBoolQuery.AddMust(subQuery)
	}

	orGroup(q.Genres, "genre")
	orGroup(q.Artists, "artist")
	orGroup(q.Albums, "album")
	orGroup(q.Titles, "title")

	if len(q.Any) > 0 {
		subQuery := bleve.NewBooleanQuery()
		for _, t := range q.Any {
			for _, field := range []string{"artist", "album", "title"} {
				mq := bleve.NewMatchQuery(t)
				mq.SetField(field)
				subQuery.AddShould(mq)
			}
		}
		mainBoolQuery.AddMust(subQuery)
	}

	return b.runQuery(mainBoolQuery)
}

func (b *BleveStore) runQuery(q bleveQuery.Query) ([]Track, error) {
	req := bleve.NewSearchRequest(q)
	req.Size = 1000
	req.Fields = []string{"*"}
	req.SortBy([]string{"artist", "album", "discnumber", "tracknumber"})

	res, err := b.index.Search(req)
	if err != nil {
		return nil, err
	}

	var results []Track
	for _, hit := range res.Hits {
		getStr := func(f string) string {
			if v, ok := hit.Fields[f].(string); ok {
				return v
			}
			return ""
		}
		getInt := func(f string) int {
			if v, ok := hit.Fields[f].(float64); ok {
				return int(v)
			}
			return 0
		}

		results = append(results, Track{
			Filename:    hit.ID,
			Title:       getStr("title"),
			Artist:      getStr("artist"),
			Album:       getStr("album"),
			Genre:       getStr("genre"),
			TrackNumber: getInt("tracknumber"),
			DiscNumber:  getInt("discnumber"),
		})
	}
	return results, nil
}
