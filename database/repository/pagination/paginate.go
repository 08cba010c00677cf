package pagination

type Paginate struct {
	Page     int
	Limit    int
	NumItems int64
}

func (a *Paginate) SetNumItems(number int64) {
	a.NumItems = number
}

func (a *Paginate) Offset() int {
	if a.Page < MinPage {
		return 0
	}

	return (a.Page - 1) * a.Limit
}
