/*
Package token implements a ledger of fungible assets.

Every asset is described by a Mint, identified by the address derived
from its ticker. Balances are kept in associated accounts, one per
(owner, mint) pair, so the address of any account can be computed without
a lookup.

An account owner may approve a single delegate to move a bounded amount
of the account balance. Custody never changes with an approval: the owner
can still spend or revoke at any time, and the delegate can spend only
while both the remaining delegated amount and the balance cover the
transfer.
*/
package token
