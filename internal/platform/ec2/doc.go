// Package ec2 provides a wrapper around the AWS EC2 networking API.
//
// NetworkAPI is the capability interface the orchestrator consumes; RealClient
// implements it on top of the AWS SDK, and MockClient provides a test double
// with injectable behavior and a provider-call counter.
package ec2
