// Package docship provides an embeddable document shipping pipeline.
//
// Each submitted file is recognized into a document, checked for an accepted
// format version and for freshness, signed with a certificate and delivered
// to the ingestion service. Files that fail any step are reported back as
// skipped; one file's failure never affects another.
//
// # Basic Usage
//
//	cfg := docship.Config{
//	    InboxDir: "/srv/docship/inbox",
//	    AuthKey:  "your-api-key",
//	}
//
//	d, err := docship.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, report, err := d.Run(ctx, cert)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range result.Skips {
//	    fmt.Println(s.File.Name, s.Reason)
//	}
//
// Files that are already in memory can be shipped with [Docship.SendFiles]
// without an inbox directory.
//
// # Watch Mode
//
// [Docship.Watch] runs a batch at start and again whenever new files land in
// the inbox. Delivered files are moved into the inbox's sent/ directory so
// they are never shipped twice.
//
// # Dependency Injection
//
// Every collaborator of the pipeline can be replaced:
//
//	d, err := docship.New(cfg,
//	    docship.WithRecognizer(myRecognizer),
//	    docship.WithSender(mySender),
//	    docship.WithLogger(customLogger),
//	)
package docship
