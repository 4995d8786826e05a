// Package s3 provides a minimal client for S3-compatible object storage.
//
// It is used to archive session reports. Non-AWS endpoints such as MinIO are
// supported through a base endpoint override and path-style addressing.
package s3
