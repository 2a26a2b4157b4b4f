/*
Package app contains the tendermint ABCI application glue.

StoreApp keeps the committed state together with the check and deliver
caches and answers queries. BaseApp decodes transactions and dispatches
them through a Handler, usually a chain of decorators around a Router.
All ABCI calls that touch the state are serialised.
*/
package app
