// Package teams delivers composed message bodies to a Microsoft Teams
// incoming webhook as an Adaptive Card.
//
//	var cfg teams.Config
//	config.MustLoad(&cfg)
//	client := teams.MustNewClient(cfg)
//
//	c := message.NewComposer()
//	_ = c.SetHeader("Nightly import", "")
//	_ = c.AddText("Import finished")
//	body, _ := c.Finalize()
//
//	if err := client.Send(ctx, body); err != nil {
//		// errors.Is(err, webhook.ErrPermanentFailure) for 4xx responses
//	}
//
// Each Send is a single POST; failed deliveries are not retried.
package teams
