package outseta

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// MaxPageSize is the largest page the API will return.
const MaxPageSize = 25

// Params is the query parameter mapping sent with a request.
type Params map[string]string

// Clone returns a copy of p. A nil Params clones to an empty one.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)

	return out
}

// PageRequest selects one page of a list endpoint. Unset page and size are
// left out of the query entirely so the server applies its own defaults.
type PageRequest struct {
	page     *int
	pageSize *int
	orderBy  string
	sort     Sort
	params   Params
}

// PageRequestBuilder accumulates page request options.
type PageRequestBuilder struct {
	request PageRequest
}

// NewPageRequest starts building a page request.
func NewPageRequest() *PageRequestBuilder {
	return &PageRequestBuilder{request: PageRequest{params: Params{}}}
}

// Page sets the zero-based page number.
func (b *PageRequestBuilder) Page(page int) *PageRequestBuilder {
	b.request.page = &page

	return b
}

// PageSize sets the number of items per page.
func (b *PageRequestBuilder) PageSize(size int) *PageRequestBuilder {
	b.request.pageSize = &size

	return b
}

// OrderBy sets the field the server sorts by.
func (b *PageRequestBuilder) OrderBy(field string) *PageRequestBuilder {
	b.request.orderBy = field

	return b
}

// Sort sets the sort direction used with OrderBy.
func (b *PageRequestBuilder) Sort(direction Sort) *PageRequestBuilder {
	b.request.sort = direction

	return b
}

// Param adds a custom query parameter.
func (b *PageRequestBuilder) Param(key, value string) *PageRequestBuilder {
	if b.request.params == nil {
		b.request.params = Params{}
	}

	b.request.params[key] = value

	return b
}

// AccountStage filters accounts by stage.
func (b *PageRequestBuilder) AccountStage(stage AccountStage) *PageRequestBuilder {
	return b.Param("AccountStage", strconv.Itoa(int(stage)))
}

// ActivityEntityType filters activities by the kind of record they refer to.
func (b *PageRequestBuilder) ActivityEntityType(entityType EntityType) *PageRequestBuilder {
	return b.Param("EntityType", strconv.Itoa(int(entityType)))
}

// ActivityType filters activities by type.
func (b *PageRequestBuilder) ActivityType(activityType ActivityType) *PageRequestBuilder {
	return b.Param("ActivityType", strconv.Itoa(int(activityType)))
}

// TransactionType filters billing transactions by type.
func (b *PageRequestBuilder) TransactionType(transactionType BillingTransactionType) *PageRequestBuilder {
	return b.Param("BillingTransactionType", strconv.Itoa(int(transactionType)))
}

// Build validates the options and returns the page request.
func (b *PageRequestBuilder) Build() (*PageRequest, error) {
	if b.request.page != nil && *b.request.page < 0 {
		return nil, NewError(KindPageBuild, fmt.Sprintf("page must not be negative, got %d", *b.request.page))
	}

	if b.request.pageSize != nil && (*b.request.pageSize <= 0 || *b.request.pageSize > MaxPageSize) {
		return nil, NewError(KindPageBuild,
			fmt.Sprintf("page size must be between 1 and %d, got %d", MaxPageSize, *b.request.pageSize))
	}

	request := b.request
	request.params = b.request.params.Clone()

	return &request, nil
}

// PageNum returns the page number and whether it was set.
func (r *PageRequest) PageNum() (int, bool) {
	if r.page == nil {
		return 0, false
	}

	return *r.page, true
}

// Size returns the page size and whether it was set.
func (r *PageRequest) Size() (int, bool) {
	if r.pageSize == nil {
		return 0, false
	}

	return *r.pageSize, true
}

// BuildParams returns the query parameters for this page.
func (r *PageRequest) BuildParams() Params {
	params := r.params.Clone()

	if r.page != nil {
		offset := *r.page
		if r.pageSize != nil {
			offset *= *r.pageSize
		}

		params["offset"] = strconv.Itoa(offset)
	}

	if r.pageSize != nil {
		params["limit"] = strconv.Itoa(*r.pageSize)
	}

	if strings.TrimSpace(r.orderBy) != "" {
		direction := r.sort
		if direction == "" {
			direction = SortAsc
		}

		params["orderBy"] = r.orderBy + " " + string(direction)
	}

	return params
}

// NextPageRequest returns the request for the following page.
func (r *PageRequest) NextPageRequest() *PageRequest {
	next := *r
	next.params = r.params.Clone()

	page := 1
	if r.page != nil {
		page = *r.page + 1
	}

	next.page = &page

	if r.pageSize != nil {
		size := *r.pageSize
		next.pageSize = &size
	}

	return &next
}

// PageParams returns the query parameters for r, or an empty set when r is nil.
func PageParams(r *PageRequest) Params {
	if r == nil {
		return Params{}
	}

	return r.BuildParams()
}
