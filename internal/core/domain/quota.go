package domain

// Transfer quotas per asset, counted over accepted ledger records for the
// asset's whole lifetime. Restore never resets these.
const (
	// ManufacturerTransferLimit caps MANUFACTURER_TO_DISTRIBUTOR moves.
	ManufacturerTransferLimit = 1
	// DistributorTransferLimit caps DISTRIBUTOR_TO_DISTRIBUTOR moves.
	DistributorTransferLimit = 2
	// GlobalTransferLimit caps total accepted moves excluding TO_PLANT.
	// TO_PLANT is exempt: installation is the designed endpoint of the
	// chain and must stay reachable after the quota is exhausted.
	GlobalTransferLimit = 3
)

// Denial reason codes. These are part of the stable external contract.
const (
	ReasonPlantOwnershipFinal         = "PLANT_OWNERSHIP_FINAL"
	ReasonAssetBurned                 = "ASSET_BURNED"
	ReasonManufacturerLimitExceeded   = "MANUFACTURER_TRANSFER_LIMIT_EXCEEDED"
	ReasonDistributorLimitExceeded    = "DISTRIBUTOR_TRANSFER_LIMIT_EXCEEDED"
	ReasonGlobalTransferLimitExceeded = "GLOBAL_TRANSFER_LIMIT_EXCEEDED"
	ReasonNotCurrentOwner             = "NOT_CURRENT_OWNER"
)

// QuotaCounts is the ledger state the evaluator needs: accepted-record
// counts read under the same transaction as the subsequent write.
type QuotaCounts struct {
	ManufacturerToDistributor int
	DistributorToDistributor  int
	TotalExcludingPlant       int
}

// Decision is the evaluator's verdict on a proposed transfer.
type Decision struct {
	Allowed    bool
	ReasonCode string
}

// EvaluateTransfer decides whether a proposed ownership change is permitted.
// Pure function: no side effects, no persistence access. Rules run in a
// fixed order and the first failing rule wins:
//
//  1. plant finality
//  2. burned flag
//  3. per-category quota (TO_PLANT has none)
//  4. global cap, TO_PLANT exempt
//  5. declared from-owner must match the registry
func EvaluateTransfer(asset *Asset, proposal TransferProposal, counts QuotaCounts) Decision {
	if asset.IsInstalled() {
		return Decision{ReasonCode: ReasonPlantOwnershipFinal}
	}

	if asset.Burned {
		return Decision{ReasonCode: ReasonAssetBurned}
	}

	switch proposal.Category {
	case CategoryManufacturerToDistributor:
		if counts.ManufacturerToDistributor >= ManufacturerTransferLimit {
			return Decision{ReasonCode: ReasonManufacturerLimitExceeded}
		}
	case CategoryDistributorToDistributor:
		if counts.DistributorToDistributor >= DistributorTransferLimit {
			return Decision{ReasonCode: ReasonDistributorLimitExceeded}
		}
	case CategoryToPlant:
		// Uncapped: the terminal move is always permitted per category.
	}

	if proposal.Category != CategoryToPlant && counts.TotalExcludingPlant >= GlobalTransferLimit {
		return Decision{ReasonCode: ReasonGlobalTransferLimitExceeded}
	}

	if proposal.FromOwnerID != asset.CurrentOwnerID {
		return Decision{ReasonCode: ReasonNotCurrentOwner}
	}

	return Decision{Allowed: true}
}
