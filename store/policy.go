package store

// Access rules are declared once per resource and checked by a single
// guard before dispatch, instead of repeating role checks inside each
// data function.

type rule int

const (
	rulePublic rule = iota
	ruleAuthenticated
	ruleAdminOnly
	ruleOwnerOrAdmin
)

type resource int

const (
	resourceUser resource = iota
	resourceCourse
	resourceEnrollment
	resourceNotice
	resourceInquiry
	resourceActivity
)

type policy struct {
	read  rule
	write rule
}

// policies is the complete access declaration for the store: catalog
// resources are public-read admin-write, user-owned resources are
// owner-or-admin. Inquiry submission is public and therefore not a
// guarded operation at all; managing inquiries is admin territory.
var policies = map[resource]policy{
	resourceUser:       {read: ruleAdminOnly, write: ruleOwnerOrAdmin},
	resourceCourse:     {read: rulePublic, write: ruleAdminOnly},
	resourceEnrollment: {read: ruleOwnerOrAdmin, write: ruleOwnerOrAdmin},
	resourceNotice:     {read: rulePublic, write: ruleAdminOnly},
	resourceInquiry:    {read: ruleAdminOnly, write: ruleAdminOnly},
	resourceActivity:   {read: ruleOwnerOrAdmin, write: ruleAdminOnly},
}

// authorize checks sess against the declared rule for the resource.
// ownerID is the id of the record's owning user, where ownership
// applies; pass "" otherwise.
func authorize(sess *Session, res resource, write bool, ownerID string) error {
	p := policies[res]
	r := p.read
	if write {
		r = p.write
	}

	switch r {
	case rulePublic:
		return nil
	case ruleAuthenticated:
		if sess == nil {
			return ErrUnauthenticated
		}
		return nil
	case ruleAdminOnly:
		if sess == nil {
			return ErrUnauthenticated
		}
		if !sess.User.IsAdmin() {
			return ErrForbidden
		}
		return nil
	case ruleOwnerOrAdmin:
		if sess == nil {
			return ErrUnauthenticated
		}
		if sess.User.ID != ownerID && !sess.User.IsAdmin() {
			return ErrForbidden
		}
		return nil
	}
	return ErrForbidden
}
