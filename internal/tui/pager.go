package tui

import "github.com/MKhiriev/channel-console/models"

// pager tracks skip/limit pagination. The next page is only reachable when
// the current page came back full.
type pager struct {
	index   int
	size    int
	canNext bool
}

func newPager(size int) pager {
	return pager{size: size}
}

func (p pager) params() models.ListParams {
	return models.Page(p.index, p.size)
}

// observe records how many rows the current page returned.
func (p *pager) observe(rows int) {
	p.canNext = rows >= p.size
}

func (p *pager) next() bool {
	if !p.canNext {
		return false
	}
	p.index++
	p.canNext = false
	return true
}

func (p *pager) prev() bool {
	if p.index == 0 {
		return false
	}
	p.index--
	return true
}

func (p *pager) reset() {
	p.index = 0
	p.canNext = false
}

func (p pager) label() string {
	return "page " + itoa(int64(p.index+1))
}
