// Package hooshclient creates CMS API clients.
//
// Three constructors cover the usual entry points:
//
//	client, err := hooshclient.NewWithSession("https://cms.example.com", sessionCookie, csrfCookie)
//	client, err := hooshclient.NewWithToken("https://cms.example.com", token)
//	client, err := hooshclient.NewPublic("https://cms.example.com")
//
// For retry tuning, logging, or a session-expiry handler, build a
// hoosh.Config and call New directly.
package hooshclient
