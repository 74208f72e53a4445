// Package outsetaclient builds clients for the Outseta REST API.
//
// A Builder collects the base URL, credentials, parser and request maker,
// and Build validates them before returning an outseta.Client whose endpoint
// groups share one configuration.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/outseta-client/pkg/outseta"
//	  "github.com/fivetwenty-io/outseta-client/pkg/outsetaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := outsetaclient.NewBuilder("https://example.outseta.com/api/v1").
//	    APIKey("apikey:secret").
//	    DefaultParser().
//	    DefaultRequestMaker().
//	    Build()
//	  if err != nil { log.Fatal(err) }
//
//	  page, _ := outseta.NewPageRequest().PageSize(25).Build()
//	  accounts, err := cli.Accounts().List(ctx, page)
//	  if err != nil { log.Fatal(err) }
//	  _ = accounts
//	}
//
// # Credentials
//
// APIKey sends "Authorization: Outseta <key>" and acts on behalf of the
// account owner. AccessKey sends "Authorization: bearer <token>" for a token
// obtained from Auth().GetToken. Profile clients need an access key.
//
// # Helpers
//
// NewWithAPIKey and NewWithAccessKey wire the JSON parser and the default
// request maker in one call.
package outsetaclient
