// Package services contains the storefront use cases that sit between the
// CLI and the backend: browsing the catalog, reviewing an order at checkout
// and listing past orders on the dashboard.
package services
