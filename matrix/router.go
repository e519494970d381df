package matrix

import (
	"context"

	"github.com/teranos/xmatrix/errors"
	"github.com/teranos/xmatrix/intent"
)

// LookupResult carries the matched records together with the lookup kind
// that produced them, for presentation.
type LookupResult struct {
	Kind    intent.LookupKind
	Records []*Record
}

// Route dispatches a parsed intent to the matching store operation. The
// intent value is passed through unmodified; all normalization happens
// inside the store lookups. An empty result is a successful outcome.
func Route(ctx context.Context, store *Store, in *intent.Intent) (*LookupResult, error) {
	switch in.Kind {
	case intent.ByUniqueID:
		rec, err := store.FindByUniqueID(ctx, in.Value)
		if err != nil {
			return nil, err
		}
		result := &LookupResult{Kind: in.Kind, Records: []*Record{}}
		if rec != nil {
			result.Records = append(result.Records, rec)
		}
		return result, nil

	case intent.ByReferenceID:
		records, err := store.FindByReferenceID(ctx, in.Value)
		if err != nil {
			return nil, err
		}
		return &LookupResult{Kind: in.Kind, Records: records}, nil

	case intent.ByXPath:
		records, err := store.FindByXPath(ctx, in.Value)
		if err != nil {
			return nil, err
		}
		return &LookupResult{Kind: in.Kind, Records: records}, nil

	default:
		return nil, errors.Wrapf(errors.ErrUnknownLookupKind, "%q", in.Kind)
	}
}
