// Package hoosh defines the public types and interfaces of the Hoosh Pro CMS
// API client: resource records, client interfaces, the list-query builder,
// the structured error model, and the response cache.
//
// Construct a client with the hooshclient package:
//
//	client, err := hooshclient.New(ctx, &hoosh.Config{
//		Endpoint:     "https://cms.example.com",
//		SessionToken: sessionCookie,
//		CSRFToken:    csrfCookie,
//	})
//
// All list endpoints share one pagination/search/sort protocol (ListParams);
// each resource adds its own filter and allowed sort fields. Serialization
// is deterministic, so a serialized query doubles as a cache key.
package hoosh
