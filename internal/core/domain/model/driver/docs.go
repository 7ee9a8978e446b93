// Package driver provides the Driver aggregate for the delivery roster.
//
// The roster tracks who works for the restaurant and whether they are
// currently employed. It deliberately does not track whether a driver is
// busy: availability for dispatch is derived from the active order board by
// the dispatch service, so the roster and the orders can never disagree.
//
// Key business rules:
//   - Drivers must have a valid UUID, first name, last name and username
//   - Employment status is Active or Inactive; only Active drivers are
//     eligible for dispatch
//   - Renaming a driver never rewrites the names snapshotted onto past orders
package driver
