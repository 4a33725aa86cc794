package friendships

import "context"

// Oracle answers whether two identities are accepted friends. The relation
// is symmetric. The friend graph itself is owned elsewhere.
type Oracle interface {
	IsAcceptedFriend(ctx context.Context, a, b string) (bool, error)
}
