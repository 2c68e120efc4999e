// Package sealgate provides a Go client SDK for the SealGate message
// gateway, which lets backend applications send messages to identities
// on the SealGate network.
//
// Two client variants exist. SimpleClient sends plain text that the
// gateway can read; E2EClient encrypts messages end-to-end so the
// gateway operator never sees content. Both share the directory lookup
// operations.
//
// End-to-end usage:
//
//	client, err := sealgate.NewE2E("*GWID123", "gateway-secret",
//	    sealgate.WithPrivateKeyHex(os.Getenv("SEALGATE_PRIVATE_KEY")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	recipientKey, err := client.LookupPubkey(ctx, "RECIPIENT")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg, err := client.EncryptText("hello", recipientKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msgID, err := client.Send(ctx, "RECIPIENT", msg, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("sent:", msgID)
//
// Recipient public keys are fetched fresh on every LookupPubkey call;
// cache them if you send to the same identity repeatedly.
package sealgate
