package voicenotes

import "context"

// VoicenoteIterator is a lazy, single-pass iterator over voicenotes.
// It fetches one page at a time as the consumer pulls, so stopping early
// stops fetching.
//
// Usage:
//
//	it := client.Voicenotes().Iterate(ctx, nil)
//	for it.Next() {
//	    fmt.Println(it.Voicenote().Title)
//	}
//	if err := it.Err(); err != nil {
//	    log.Fatal(err)
//	}
type VoicenoteIterator struct {
	ctx    context.Context
	svc    *VoicenotesService
	params VoicenoteListParams

	page    int
	buf     []*Voicenote
	idx     int
	hasMore bool
	fetched bool
	done    bool

	cur *Voicenote
	err error
}

// Next advances to the next voicenote, fetching the next page when the
// current one is exhausted. It returns false when the sequence ends or an
// error occurs; check Err afterwards.
func (it *VoicenoteIterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}

	for it.idx >= len(it.buf) {
		if it.fetched {
			if !it.hasMore {
				it.done = true
				return false
			}
			it.page++
		}

		params := it.params
		params.Page = it.page
		list, err := it.svc.List(it.ctx, &params)
		if err != nil {
			it.err = err
			return false
		}
		it.fetched = true
		it.buf = list.Voicenotes
		it.idx = 0
		it.hasMore = list.Pagination.HasMore
	}

	it.cur = it.buf[it.idx]
	it.idx++
	return true
}

// Voicenote returns the current item. Only valid after Next returned true.
func (it *VoicenoteIterator) Voicenote() *Voicenote {
	return it.cur
}

// Err returns the first error encountered while iterating, if any.
func (it *VoicenoteIterator) Err() error {
	return it.err
}
