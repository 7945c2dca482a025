// Package mailgun provides a typed Go client for the Mailgun v3 API.
//
// The client covers message sending plus the read endpoints for bounces,
// complaints, events, stats, unsubscribes and whitelist records. You will
// need both an API key and a sending domain.
//
// Sending a message:
//
//	client, err := mailgun.New(apiKey, domain)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	params := mailgun.NewSendMessageParamList().
//	    To("to@test.com").
//	    From("from@your-domain.com").
//	    Subject("Test Message").
//	    HTML("<html><body><h1>Test Message</h1></body></html>")
//
//	resp, err := client.SendMessage(ctx, params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Queued:", resp.ID)
//
// The client does not enforce rules on message composition, but you should
// almost always set Subject, To, From and Text and/or HTML.
//
// # Pagination
//
// List endpoints return a Paging block of absolute URLs. Instead of
// parsing them, feed them to Call to fetch adjacent pages:
//
//	resp, err := client.GetBounces(ctx, mailgun.NewGetBouncesParamList())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bounces := resp.Items
//
//	for len(resp.Items) > 0 {
//	    resp, err = mailgun.Call[mailgun.GetBouncesResponse](ctx, client, resp.Paging.Next)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    bounces = append(bounces, resp.Items...)
//	}
//
// # Errors
//
// Every failed call returns exactly one of the typed errors in this
// package: *ParamError (a parameter could not be rendered), *TransportError
// (the HTTP round-trip or body read failed), *APIError (the service
// returned a structured error message), *HTTPError (the service returned a
// non-200 status with an unrecognized body) or *ParseError (a success body
// did not decode into the declared response shape). The client never
// retries, logs or recovers internally; callers decide what to do with
// each failure.
package mailgun
