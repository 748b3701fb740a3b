// Package dialfire provides types, interfaces, and helpers for working with
// the Dialfire call-center API.
//
// # Overview
//
// The dialfire package defines the request/response primitives (RequestSpec,
// Payload, PagedResponse), the datetime codec used by Dialfire's wire format,
// and the interfaces for scope-oriented clients (CampaignAPI, TenantAPI). A
// concrete implementation of these clients is provided by the dfclient
// package, which wires configuration and transport. Most consumers should
// import dfclient to construct a client and then interact with the interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/armitxes/dialfire-go/pkg/dfclient"
//	  "github.com/armitxes/dialfire-go/pkg/dialfire"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dfclient.New(&dialfire.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  campaign := cli.Campaign("campaign-id", "campaign-token")
//	  tasks, err := campaign.ListTasks(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = tasks
//	}
//
// # Payloads
//
// Dialfire accepts three mutually exclusive body shapes, modeled as a tagged
// union of Payload variants: RawPayload (literal text), JSONPayload (a JSON
// object), and FilterPayload (a JSON list of filter clauses). FilterPayload is
// also the carrier for pagination parameters: the engine appends synthetic
// "_cursor_" and "_limit_" clauses to a copy of the list on every send.
//
// # Pagination
//
// Filtered list calls return a PagedResponse. The server-issued cursor marks
// the position in the result set; an empty cursor means the set is exhausted:
//
//	page, err := campaign.FilterContacts(ctx, filter, "", 100)
//	for err == nil {
//	  for _, hit := range page.Matches {
//	    _ = hit
//	  }
//	  if !page.HasMore() {
//	    break
//	  }
//	  page, err = page.NextPage(ctx)
//	}
//
// NextPage advances the originating RequestSpec's cursor in place and re-issues
// the request. The engine enforces no maximum page count; bounding the loop is
// the caller's responsibility.
package dialfire
