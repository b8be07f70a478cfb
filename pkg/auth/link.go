package auth

import "github.com/modhubco/modhub/pkg/query"

type serviceKind int

const (
	serviceSteam serviceKind = iota
	serviceGOG
	serviceItchio
)

// LinkOptions connects an external account id with the authenticated user's
// email address. Exactly one external service id is carried.
type LinkOptions struct {
	email string
	kind  serviceKind
	id    uint64
}

// LinkSteam links a Steam account id.
func LinkSteam(email string, steamID uint64) LinkOptions {
	return LinkOptions{email: email, kind: serviceSteam, id: steamID}
}

// LinkGOG links a GOG Galaxy account id.
func LinkGOG(email string, gogID uint64) LinkOptions {
	return LinkOptions{email: email, kind: serviceGOG, id: gogID}
}

// LinkItchio links an itch.io account id.
func LinkItchio(email string, itchioID uint64) LinkOptions {
	return LinkOptions{email: email, kind: serviceItchio, id: itchioID}
}

// Query returns the form-encoded request body, keys in lexicographic order.
func (o LinkOptions) Query() string {
	var service string
	switch o.kind {
	case serviceSteam:
		service = "steam"
	case serviceGOG:
		service = "gog"
	case serviceItchio:
		service = "itch"
	}
	return query.NewFields().
		Set("email", o.email).
		Set("service", service).
		SetUint("service_id", o.id).
		Encode()
}
