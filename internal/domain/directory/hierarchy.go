package directory

import (
	"context"
	"errors"
)

// UserFinder is the narrow read surface the escalation walk needs.
type UserFinder interface {
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetVC returns the vice-chancellor fallback. When several users carry
	// the vc role the lowest ID wins, keeping the fallback deterministic.
	GetVC(ctx context.Context) (*User, error)
}

// NextAssignee resolves one escalation step from the given user: their
// reports_to manager if present, otherwise the VC. It never walks more than
// one level and never follows a self-reference.
func NextAssignee(ctx context.Context, finder UserFinder, fromUserID uint) (*User, error) {
	from, err := finder.GetByID(ctx, fromUserID)
	if err != nil {
		return nil, err
	}

	if from.ReportsTo() == nil {
		vc, err := finder.GetVC(ctx)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return nil, ErrNoHigherAuthority
			}
			return nil, err
		}
		if vc.ID() == fromUserID {
			return nil, ErrNoHigherAuthority
		}
		return vc, nil
	}

	nextID := *from.ReportsTo()
	if nextID == fromUserID {
		return nil, ErrReportingCycle
	}

	next, err := finder.GetByID(ctx, nextID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrNoHigherAuthority
		}
		return nil, err
	}
	return next, nil
}

// ChainOf returns the full reporting chain starting at (and excluding) the
// given user, walking reports_to until terminal authority. A revisited ID
// means the provisioning data is malformed and ErrReportingCycle is returned
// instead of looping.
func ChainOf(ctx context.Context, finder UserFinder, userID uint) ([]*User, error) {
	visited := map[uint]bool{userID: true}
	var chain []*User

	current, err := finder.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for current.ReportsTo() != nil {
		nextID := *current.ReportsTo()
		if visited[nextID] {
			return nil, ErrReportingCycle
		}
		visited[nextID] = true

		next, err := finder.GetByID(ctx, nextID)
		if err != nil {
			return nil, err
		}
		chain = append(chain, next)
		current = next
	}

	return chain, nil
}
