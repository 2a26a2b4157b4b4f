/*

Package swap defines the interfaces used throughout the application, such as:
storage, transactions, handlers and addresses. It also contains helpers to work
with context, derived addresses, queries and abci results.

Extensions live under x/. The token swap protocol itself is implemented by
x/offer on top of the asset ledger in x/token.

*/

package swap
