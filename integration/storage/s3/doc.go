// Package s3 fetches email attachments from Amazon S3 and S3-compatible
// services.
//
// A Fetcher is registered with an email.Loader for the "s3" scheme, after
// which attachment locations such as "s3://reports/2024/q1.csv" are read with
// GetObject:
//
//	var cfg s3.Config
//	config.MustLoad(&cfg)
//	fetcher, err := s3.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	loader := email.NewLoader(email.WithFetcher("s3", fetcher))
//	att, err := loader.Load(ctx, "q1.csv", "s3://reports/2024/q1.csv")
//
// A location without a bucket ("s3:///2024/q1.csv") uses Config.Bucket.
// Objects larger than Config.MaxSize (25 MiB by default) are rejected with
// ErrObjectTooLarge.
//
// S3 failures are classified into ErrObjectNotFound, ErrBucketNotFound,
// ErrAccessDenied, ErrServiceUnavailable, ErrOperationTimeout and
// ErrOperationCanceled so callers can use errors.Is.
package s3
