// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("tables/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = dataframe.Save(ctx, store, "sales.csv.zst", table)
//
// Writes go through the S3 upload manager, which switches to multipart
// uploads for large tables. Reads use ranged GETs.
package s3
