// Package plentymarkets provides a Go client for the PlentyMarkets
// e-commerce REST API.
//
// The client authenticates with email and password, stores the returned
// bearer token, and issues GET/POST/PUT/DELETE calls against arbitrary
// endpoints. A 401 response triggers exactly one token refresh followed by
// one retry of the original call.
//
// Basic usage:
//
//	client, err := plentymarkets.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := client.Login(ctx, "shop@example.com", "secret"); err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Get(ctx, "pim/attributes", plentymarkets.Params{
//	    plentymarkets.P("with", "names"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(string(resp.Body))
//
// Every call returns the vendor response alongside any error, so failures can
// be classified with errors.Is / errors.As while the raw status and body stay
// inspectable. Errors never surface as panics: network failures become
// [*TransportError], non-2xx statuses become [*APIError], and 401/404 match
// the [ErrUnauthorized] and [ErrEndpointNotFound] sentinels.
package plentymarkets
