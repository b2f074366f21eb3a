package sqlq

// Where adds a condition, e.g.:
//
//	q.Where(sqlq.Eq(sqlq.C[User]("Status"), "active"))
//
// Values are bound when the condition is added. An invalid condition
// is collected as an error without binding any of its values.
func (q *Query[T]) Where(p Predicate) *Query[T] {
	if p == nil {
		return q
	}
	f, err := q.renderPredicate(p)
	if err != nil {
		q.pushError(err)
		return q
	}
	q.where = append(q.where, f)
	return q
}

// WhereAll adds each of preds as a condition.
func (q *Query[T]) WhereAll(preds ...Predicate) *Query[T] {
	for _, p := range preds {
		q.Where(p)
	}
	return q
}

// WhereIf adds onTrue if cond is true, otherwise the first of onFalse
// if given.
func (q *Query[T]) WhereIf(cond bool, onTrue Predicate, onFalse ...Predicate) *Query[T] {
	if cond {
		return q.Where(onTrue)
	}
	if len(onFalse) > 0 {
		return q.Where(onFalse[0])
	}
	return q
}

// Where2 is a helper func similar to Where(), which adds a simple where condition. e.g.:
//
//	q.Where2(column, "=", 1)
//
// it's equivalent to:
//
//	q.Where(sqlq.Compare(column, "=", 1))
func (q *Query[T]) Where2(column Column, op string, arg any) *Query[T] {
	return q.Where(Compare(column, op, arg))
}

// WhereIn adds a where IN condition like `t.id IN (1,2,3)`
func (q *Query[T]) WhereIn(column Column, list any) *Query[T] {
	return q.Where(In(column, Values(list)))
}

// WhereNotIn adds a where NOT IN condition like `t.id NOT IN (1,2,3)`
func (q *Query[T]) WhereNotIn(column Column, list any) *Query[T] {
	return q.Where(NotIn(column, Values(list)))
}
