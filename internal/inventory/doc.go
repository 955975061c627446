// Package inventory holds the shoe stock data model.
//
// A Record is one line of stock: where the shoe is made, its product code,
// its name, its unit cost and how many units are on hand. Only the quantity
// changes after a Record is created.
//
// A Store is an ordered collection of Records. Order is insertion order,
// which for loaded records is the file's line order. Product codes are not
// unique; every lookup returns the first match in collection order.
//
// The Store is not safe for concurrent use. The tracker is single-user and
// drives it from one goroutine.
package inventory
