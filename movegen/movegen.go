// Package movegen generates legal chess moves from a [position.Position].
// It holds no state of its own beyond the process-wide [attack.Table]: every
// function takes a pointer to a position it only reads and returns moves into a caller-owned
// [position.MoveList].
package movegen

import (
	"github.com/avrelii/chesscore/attack"
	"github.com/avrelii/chesscore/bitboard"
	"github.com/avrelii/chesscore/position"
)

// castleBlockerKingside and castleBlockerQueenside are the squares that must
// be empty (on whichever back rank applies) for a castle to even be
// considered; the king's path is checked separately for attacks.
const (
	castleBlockerKingside  = bitboard.FileF | bitboard.FileG
	castleBlockerQueenside = bitboard.FileB | bitboard.FileC | bitboard.FileD
)

// attacksFromSquare returns the attack set of whatever piece sits on sq,
// with the mover's own pieces masked out. Empty squares attack nothing.
func attacksFromSquare(tbl *attack.Table, p *position.Position, sq position.Square) bitboard.Bitboard {
	kind := p.PieceAt(sq)
	color := p.ColorAt(sq)
	if kind == position.PieceNone {
		return 0
	}

	var attacks bitboard.Bitboard
	switch kind {
	case position.Pawn:
		attacks = tbl.GetPawnAttacks(sq, int(color))
	case position.Knight:
		attacks = tbl.GetJumpAttacks(sq, attack.KindKnight)
	case position.King:
		attacks = tbl.GetJumpAttacks(sq, attack.KindKing)
	case position.Rook:
		attacks = tbl.GetSlidingAttacks(sq, attack.KindRook, p.OccupiedBB())
	case position.Bishop:
		attacks = tbl.GetSlidingAttacks(sq, attack.KindBishop, p.OccupiedBB())
	case position.Queen:
		attacks = tbl.GetSlidingAttacks(sq, attack.KindQueen, p.OccupiedBB())
	}
	return attacks &^ p.Occupied[color]
}

// attackersMask returns the set of co's opponent's pieces attacking sq,
// ignoring en passant (which never matters for "is this square attacked").
func attackersMask(tbl *attack.Table, p *position.Position, sq position.Square, co position.Color) bitboard.Bitboard {
	opp := co.Other()
	occupied := p.OccupiedBB()

	var attackers bitboard.Bitboard
	attackers |= p.Pieces[position.Pawn] & p.Occupied[opp] & tbl.GetPawnAttacks(sq, int(co))
	attackers |= p.Pieces[position.Knight] & p.Occupied[opp] & tbl.GetJumpAttacks(sq, attack.KindKnight)
	attackers |= p.Pieces[position.King] & p.Occupied[opp] & tbl.GetJumpAttacks(sq, attack.KindKing)
	attackers |= (p.Pieces[position.Rook] | p.Pieces[position.Queen]) & p.Occupied[opp] &
		tbl.GetSlidingAttacks(sq, attack.KindRook, occupied)
	attackers |= (p.Pieces[position.Bishop] | p.Pieces[position.Queen]) & p.Occupied[opp] &
		tbl.GetSlidingAttacks(sq, attack.KindBishop, occupied)
	return attackers
}

func isAttacked(tbl *attack.Table, p *position.Position, sq position.Square) bool {
	return attackersMask(tbl, p, sq, p.Turn) != 0
}

// IsCheck reports whether the side to move is in check.
func IsCheck(p *position.Position) bool {
	tbl := attack.Get()
	king := p.King(p.Turn)
	return isAttacked(tbl, p, king)
}

// CheckerCount returns how many of the opponent's pieces currently attack
// the side to move's king: 0 (no check), 1, or 2 (double check).
func CheckerCount(p *position.Position) int {
	tbl := attack.Get()
	king := p.King(p.Turn)
	return bitboard.PopCount(attackersMask(tbl, p, king, p.Turn))
}

// GenerateLegalMoves appends every legal move available to the side to move
// in p into list. list must be empty; the caller owns its lifetime.
func GenerateLegalMoves(p *position.Position, list *position.MoveList) {
	tbl := attack.Get()

	if IsCheck(p) {
		genEvasions(tbl, p, list)
	} else {
		genMaskedPseudoLegal(tbl, p, list, bitboard.All, bitboard.All)
	}

	// Filter in place: keep only legal moves, preserving order.
	write := 0
	moves := list.Slice()
	for read := 0; read < len(moves); read++ {
		if isLegal(tbl, p, moves[read]) {
			moves[write] = moves[read]
			write++
		}
	}
	list.Count = write
}

// genMaskedPseudoLegal generates every pseudo-legal move whose origin square
// is in from_mask and destination square is in to_mask. Called with
// (All, All) for ordinary generation and with restricted masks to filter
// check-evasion candidates down to blocking/capturing moves.
func genMaskedPseudoLegal(tbl *attack.Table, p *position.Position, list *position.MoveList, fromMask, toMask bitboard.Bitboard) {
	occupied := p.OccupiedBB()
	selfOccupied := p.Occupied[p.Turn]
	oppOccupied := p.Occupied[p.Turn.Other()]

	pawns := selfOccupied & p.Pieces[position.Pawn] & fromMask

	// Pawn captures, including promotion-by-capture.
	pawnBB := pawns
	for pawnBB != 0 {
		from := bitboard.PopLSB(&pawnBB)
		attacks := attacksFromSquare(tbl, p, from) & oppOccupied & toMask
		for attacks != 0 {
			to := bitboard.PopLSB(&attacks)
			pushPawnMove(list, from, to)
		}
	}

	// Non-pawn piece moves.
	pieces := selfOccupied &^ pawns & fromMask
	pieceBB := pieces
	for pieceBB != 0 {
		from := bitboard.PopLSB(&pieceBB)
		attacks := attacksFromSquare(tbl, p, from) & toMask
		for attacks != 0 {
			to := bitboard.PopLSB(&attacks)
			list.Push(position.NewMove(from, to))
		}
	}

	genCastling(tbl, p, list, fromMask, toMask, occupied)
	genPawnAdvances(p, list, pawns, occupied, toMask)
	genEnPassant(tbl, p, list, pawns, selfOccupied, fromMask, toMask)
}

func pushPawnMove(list *position.MoveList, from, to position.Square) {
	rank := bitboard.SquareRank(to)
	if rank == 0 || rank == 7 {
		for _, promo := range position.PromotionKinds {
			list.Push(position.NewPromotionMove(from, to, promo))
		}
		return
	}
	list.Push(position.NewMove(from, to))
}

func genCastling(tbl *attack.Table, p *position.Position, list *position.MoveList, fromMask, toMask bitboard.Bitboard, occupied bitboard.Bitboard) {
	kings := p.Occupied[p.Turn] & p.Pieces[position.King] & fromMask
	if kings == 0 {
		return
	}
	king := bitboard.LSB(kings)

	backRank := bitboard.Rank1
	if p.Turn == position.Black {
		backRank = bitboard.Rank8
	}

	candidates := bitboard.Bitboard(p.CastlingRights) & backRank
	for candidates != 0 {
		home := bitboard.PopLSB(&candidates)

		if king < home {
			// Kingside.
			if castleBlockerKingside&backRank&occupied != 0 {
				continue
			}
			dest := king + 2
			if bitboard.SquareBB(dest)&toMask == 0 {
				continue
			}
			e := bitboard.LSB(bitboard.FileE & backRank)
			f := bitboard.LSB(bitboard.FileF & backRank)
			g := bitboard.LSB(bitboard.FileG & backRank)
			if !isAttacked(tbl, p, e) && !isAttacked(tbl, p, f) && !isAttacked(tbl, p, g) {
				list.Push(position.NewMove(king, dest))
			}
		} else if king > home {
			// Queenside.
			if castleBlockerQueenside&backRank&occupied != 0 {
				continue
			}
			dest := king - 2
			if bitboard.SquareBB(dest)&toMask == 0 {
				continue
			}
			c := bitboard.LSB(bitboard.FileC & backRank)
			d := bitboard.LSB(bitboard.FileD & backRank)
			e := bitboard.LSB(bitboard.FileE & backRank)
			if !isAttacked(tbl, p, c) && !isAttacked(tbl, p, d) && !isAttacked(tbl, p, e) {
				list.Push(position.NewMove(king, dest))
			}
		}
	}
}

func genPawnAdvances(p *position.Position, list *position.MoveList, pawns, occupied, toMask bitboard.Bitboard) {
	var singleAdvances, doubleAdvances bitboard.Bitboard
	var delta position.Square

	if p.Turn == position.White {
		singleAdvances = (pawns << 8) &^ occupied
		doubleAdvances = (singleAdvances << 8) &^ occupied & bitboard.Rank4 & toMask
		delta = 8
	} else {
		singleAdvances = (pawns >> 8) &^ occupied
		doubleAdvances = (singleAdvances >> 8) &^ occupied & bitboard.Rank5 & toMask
		delta = -8
	}
	singleAdvances &= toMask

	for singleAdvances != 0 {
		to := bitboard.PopLSB(&singleAdvances)
		pushPawnMove(list, to-delta, to)
	}
	for doubleAdvances != 0 {
		to := bitboard.PopLSB(&doubleAdvances)
		list.Push(position.NewMove(to-2*delta, to))
	}
}

func genEnPassant(tbl *attack.Table, p *position.Position, list *position.MoveList, pawns, selfOccupied bitboard.Bitboard, fromMask, toMask bitboard.Bitboard) {
	if p.EPSquare == position.NoSquare || bitboard.SquareBB(p.EPSquare)&toMask == 0 {
		return
	}
	capturers := pawns & selfOccupied & tbl.GetPawnAttacks(p.EPSquare, int(p.Turn.Other())) & fromMask
	for capturers != 0 {
		from := bitboard.PopLSB(&capturers)
		list.Push(position.NewMove(from, p.EPSquare))
	}
}

// genEvasions generates every legal-candidate move when the side to move is
// in check: king moves off the checked squares and, if not a double check,
// captures or blocks of the sole checker.
func genEvasions(tbl *attack.Table, p *position.Position, list *position.MoveList) {
	king := p.King(p.Turn)
	checkers := attackersMask(tbl, p, king, p.Turn)

	// Squares a slider would still attack through the king if it moved off
	// the ray: the king can't step onto any of them either.
	sliders := checkers & (p.Pieces[position.Rook] | p.Pieces[position.Bishop] | p.Pieces[position.Queen])
	var dangerMask bitboard.Bitboard
	for sliders != 0 {
		sq := bitboard.PopLSB(&sliders)
		dangerMask |= tbl.GetRay(sq, king) &^ bitboard.SquareBB(sq)
	}

	kingMoves := attacksFromSquare(tbl, p, king) &^ dangerMask
	for kingMoves != 0 {
		to := bitboard.PopLSB(&kingMoves)
		if !isAttacked(tbl, p, to) {
			list.Push(position.NewMove(king, to))
		}
	}

	if bitboard.PopCount(checkers) > 1 {
		return
	}

	checkerSquare := bitboard.LSB(checkers)
	checkerKind := p.PieceAt(checkerSquare)

	var blockingMask bitboard.Bitboard
	switch checkerKind {
	case position.Bishop, position.Rook, position.Queen:
		blockingMask = tbl.GetLine(checkerSquare, king) &^ p.Pieces[position.King]
	case position.Pawn:
		if p.EPSquare != position.NoSquare {
			genMaskedPseudoLegal(tbl, p, list, bitboard.All&p.Pieces[position.Pawn], bitboard.SquareBB(p.EPSquare))
		}
		blockingMask = checkers
	default: // Knight
		blockingMask = checkers
	}

	genMaskedPseudoLegal(tbl, p, list, bitboard.All&^p.Pieces[position.King], blockingMask)
}

// isLegal filters a pseudo-legal move for pins and king safety. Checks and
// evasions already keep the king off attacked squares, but non-king moves
// can still expose the king along a rank, file or diagonal a pinning piece
// was only prevented from using by the mover itself.
func isLegal(tbl *attack.Table, p *position.Position, mv position.Move) bool {
	if p.PieceAt(mv.From) == position.King && isAttacked(tbl, p, mv.To) {
		return false
	}

	occupied := p.OccupiedBB()
	selfOccupied := p.Occupied[p.Turn]
	oppOccupied := p.Occupied[p.Turn.Other()]

	// Rook-style pins: pretend the mover is a rook and see whether it
	// reaches its own king and an enemy rook/queen along the same file or
	// rank; if so, the move is legal only if it stays on that line.
	rookAttacks := tbl.GetSlidingAttacks(mv.From, attack.KindRook, occupied)

	vertical := rookAttacks & bitboard.FileBB(mv.From)
	if vertical&selfOccupied&p.Pieces[position.King] != 0 &&
		vertical&oppOccupied&(p.Pieces[position.Rook]|p.Pieces[position.Queen]) != 0 {
		return bitboard.SquareBB(mv.To)&vertical != 0
	}

	horizontal := rookAttacks & bitboard.RankBB(mv.From)
	if horizontal&selfOccupied&p.Pieces[position.King] != 0 &&
		horizontal&oppOccupied&(p.Pieces[position.Rook]|p.Pieces[position.Queen]) != 0 {
		return bitboard.SquareBB(mv.To)&horizontal != 0
	}

	// Bishop-style pins, same idea along each diagonal family.
	bishopAttacks := tbl.GetSlidingAttacks(mv.From, attack.KindBishop, occupied)

	asc := bishopAttacks & bitboard.DiagAscendingBB(mv.From)
	if asc&selfOccupied&p.Pieces[position.King] != 0 &&
		asc&oppOccupied&(p.Pieces[position.Bishop]|p.Pieces[position.Queen]) != 0 {
		return bitboard.SquareBB(mv.To)&asc != 0
	}

	desc := bishopAttacks & bitboard.DiagDescendingBB(mv.From)
	if desc&selfOccupied&p.Pieces[position.King] != 0 &&
		desc&oppOccupied&(p.Pieces[position.Bishop]|p.Pieces[position.Queen]) != 0 {
		return bitboard.SquareBB(mv.To)&desc != 0
	}

	// En passant is the one move type that can expose the king along a
	// rank without the mover itself standing on that rank afterward: both
	// the capturing and captured pawns vanish from the rank in the same
	// move. Simulate it directly rather than trying to fold it into the
	// pin checks above.
	if p.PieceAt(mv.From) == position.Pawn && p.PieceAt(mv.To) == position.PieceNone &&
		bitboard.SquareFile(mv.From) != bitboard.SquareFile(mv.To) {
		capturedDelta := position.Square(-8)
		if p.Turn == position.Black {
			capturedDelta = 8
		}
		captured := p.EPSquare + capturedDelta

		epBoard := occupied &^ bitboard.SquareBB(captured) &^ bitboard.SquareBB(mv.From) | bitboard.SquareBB(p.EPSquare)

		king := p.King(p.Turn)
		if tbl.GetSlidingAttacks(king, attack.KindRook, epBoard)&oppOccupied&(p.Pieces[position.Rook]|p.Pieces[position.Queen]) != 0 {
			return false
		}
		if tbl.GetSlidingAttacks(king, attack.KindBishop, epBoard)&oppOccupied&(p.Pieces[position.Bishop]|p.Pieces[position.Queen]) != 0 {
			return false
		}
	}

	return true
}
