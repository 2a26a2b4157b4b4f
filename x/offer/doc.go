/*
Package offer implements a two party token swap.

A maker opens an offer to give a fixed amount of asset A for a fixed
amount of asset B. Tokens are not moved into escrow: the maker approves
the offer address as the delegate of its asset A account and keeps
custody until settlement. Any taker may then settle the offer, paying
asset B to the maker and receiving asset A through the delegation, after
which the offer is removed.

Offers are stored at an address derived from the maker and a maker chosen
id. The derived address has no private key, so only this extension can
act for it.
*/
package offer
