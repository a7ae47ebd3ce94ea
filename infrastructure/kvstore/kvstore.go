// Package kvstore is the persistence adapter: JSON documents under
// prefixed keys, one write per key, no cross-key transactions.
package kvstore

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is the key-value contract every driver satisfies. Get reports false
// for keys that are absent or hold an undecodable value; callers treat both
// as "no data, use the default". Set and Delete apply immediately.
type Store interface {
	Get(key string, out any) bool
	Set(key string, value any) error
	Delete(key string) error
	Keys() ([]string, error)
}

const (
	KeyUsers       = "users"
	KeySession     = "session"
	KeyStores      = "stores"
	KeyCosts       = "costs"
	KeyNegatives   = "negatives"
	KeyMeetings    = "meetings"
	KeyNewStores   = "newStores"
	KeyReports     = "reports"
	KeyDataSources = "dataSources"
)

// CollectionKeys are the keys the snapshot scheduler backs up.
var CollectionKeys = []string{
	KeyUsers, KeyStores, KeyCosts, KeyNegatives, KeyMeetings,
	KeyNewStores, KeyReports, KeyDataSources,
}
