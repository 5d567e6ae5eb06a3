// Package fapshi is a typed Go client for the Fapshi payment service.
//
// A Client is constructed from credentials issued on the Fapshi dashboard
// and talks to either the sandbox or the live deployment. The deployment is
// inferred from the API key prefix (FAK_TEST_ keys are sandbox keys) and can
// be pinned explicitly.
//
//	client, err := fapshi.New(fapshi.Config{
//		APIUser: os.Getenv("FAPSHI_API_USER"),
//		APIKey:  os.Getenv("FAPSHI_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.InitiatePay(ctx, fapshi.InitiatePayRequest{
//		Amount: 500,
//		Email:  "payer@example.com",
//	})
//	// Send the payer to resp.Link, then poll:
//	tx, err := client.AwaitFinalStatus(ctx, resp.TransID)
//
// Every operation takes a context, performs at most one HTTP request and
// returns a typed error (*fapshi.Error) for validation failures, non-2xx
// responses and transport problems.
package fapshi
